package models

import "time"

// Customer is not a stored entity. It is derived at read time by
// de-duplicating orders on the (name, phone, email) composite key.
type Customer struct {
	Name              string    `json:"name"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	OrderCount        int       `json:"orderCount"`
	TotalSpent        float64   `json:"totalSpent"`
	TotalSpentDisplay string    `json:"totalSpentDisplay"`
	LastOrderAt       time.Time `json:"lastOrderAt"`
}
