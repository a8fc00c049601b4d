package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is one purchase record. The collection predates any schema
// enforcement: Products holds whatever shape the storefront wrote (a single
// document, an array, or a bare string) and Shipping stays a raw document so
// the flag's historical encodings survive decoding. Reads go through the
// normalize package, never through these fields directly.
type Order struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CustomerName string             `json:"customerName" bson:"customerName,omitempty"`
	Phone        string             `json:"phone" bson:"phone,omitempty"`
	Email        string             `json:"email" bson:"email,omitempty"`
	Status       string             `json:"status" bson:"status,omitempty"`
	Products     any                `json:"-" bson:"products,omitempty"`
	Shipping     bson.M             `json:"shipping,omitempty" bson:"shipping,omitempty"`
	ShippingCost any                `json:"-" bson:"shippingCost,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt    time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Order statuses used by the admin UI. Status is free text in the store, so
// these are conventions, not an enum.
const (
	OrderStatusPending   = "Pending"
	OrderStatusInProcess = "In Process"
	OrderStatusShipped   = "Shipped"
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"
)

// ShippingDetails is the canonical shape written for new orders.
type ShippingDetails struct {
	RequestShipping bool    `json:"requestShipping" bson:"requestShipping"`
	Address         string  `json:"address" bson:"address,omitempty"`
	City            string  `json:"city" bson:"city,omitempty"`
	State           string  `json:"state" bson:"state,omitempty"`
	Postcode        string  `json:"postcode" bson:"postcode,omitempty"`
	Cost            float64 `json:"cost" bson:"cost"`
}
