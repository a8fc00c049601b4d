package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/normalize"
)

// Review is a customer product review. The rating was stored under three
// different field names over time, so all three are decoded and resolved
// through RatingValue.
type Review struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name,omitempty"`
	Comment   string             `json:"comment" bson:"comment,omitempty"`
	Images    []string           `json:"images,omitempty" bson:"images,omitempty"`
	Rating    any                `json:"-" bson:"rating,omitempty"`
	Stars     any                `json:"-" bson:"stars,omitempty"`
	Score     any                `json:"-" bson:"score,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt,omitempty"`
}

// RatingValue resolves the rating from its alternate encodings.
func (r *Review) RatingValue() float64 {
	return normalize.Rating(r.Rating, r.Stars, r.Score)
}
