package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	InquiryStatusPending = "Pending"
	InquiryStatusReplied = "Replied"
)

// Inquiry is a customer contact-form message. Status toggles between
// Pending and Replied from the admin UI.
type Inquiry struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name,omitempty"`
	Phone     string             `json:"phone" bson:"phone,omitempty"`
	Email     string             `json:"email" bson:"email,omitempty"`
	Message   string             `json:"message" bson:"message,omitempty"`
	Status    string             `json:"status" bson:"status,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt,omitempty"`
}
