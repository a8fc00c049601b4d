package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Catalog categories, one Mongo collection each.
var ProductCategories = []string{
	"live_grass",
	"artificial_grass",
	"decorative_plants",
	"rocks",
	"furniture",
	"ornaments",
	"pots",
	"garden_tools",
}

// IsProductCategory reports whether name is one of the catalog collections.
func IsProductCategory(name string) bool {
	for _, c := range ProductCategories {
		if c == name {
			return true
		}
	}
	return false
}

// Feature is one highlighted product attribute.
type Feature struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}

// PriceTier is one measurement/price option for a product.
type PriceTier struct {
	Measurement string  `json:"measurement" bson:"measurement"`
	Price       float64 `json:"price" bson:"price"`
	SizeType    string  `json:"sizeType,omitempty" bson:"sizeType,omitempty"`
}

type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Category    string             `json:"category" bson:"category,omitempty"`
	Description string             `json:"description" bson:"description,omitempty"`
	InStock     bool               `json:"inStock" bson:"inStock"`
	Images      []string           `json:"images" bson:"images,omitempty"`
	Features    []Feature          `json:"features" bson:"features,omitempty"`
	Prices      []PriceTier        `json:"prices" bson:"prices,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt   time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
