package models

import (
	"time"
)

// Order represents one customer submission. Orders are insert-only: once a
// row is created the application never updates or deletes it.
type Order struct {
	ID              int64     `json:"id" db:"id"`
	SchoolName      string    `json:"school_name" db:"school_name"`
	ContactPerson   string    `json:"contact_person" db:"contact_person"`
	Email           string    `json:"email" db:"email"`
	Phone           *string   `json:"phone" db:"phone"`
	Product         string    `json:"product" db:"product"`
	Quantity        int       `json:"quantity" db:"quantity"`
	TotalPrice      *float64  `json:"total_price" db:"total_price"`
	PaymentProofURL *string   `json:"payment_proof_url" db:"payment_proof_url"`
	Notes           *string   `json:"notes" db:"notes"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
