// Package checkout, as part of the checkout module.
// This file, `dto.go`, defines the order form the buyer fills in and the
// receipt returned once the simulated payment completes.
package checkout

import "github.com/syedOmegaPrime/SolitudeFinalProject/cart"

// Payment methods offered at checkout.
const (
	PaymentBkash = "bkash"
	PaymentNagad = "nagad"
	PaymentCard  = "card"
)

// OrderForm is the validated input for placing an order. The struct tags
// drive go-playground/validator; this is the one boundary in the system
// that validates input shape itself before any order processing starts.
type OrderForm struct {
	FullName      string `json:"fullName" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Address       string `json:"address" validate:"required,min=5"`
	City          string `json:"city" validate:"required,min=2"`
	PostalCode    string `json:"postalCode" validate:"required,min=4"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=bkash nagad card"`
}

// Receipt is what the buyer gets back: the order id, a snapshot of the
// lines purchased, and the total charged.
type Receipt struct {
	OrderID string      `json:"orderId"`
	Items   []cart.Item `json:"items"`
	Total   float64     `json:"total"`
	// PlacedAt is an ISO-8601 timestamp string.
	PlacedAt string `json:"placedAt"`
}
