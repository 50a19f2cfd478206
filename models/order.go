package models

import "time"

// Order statuses the dashboard cares about. The upstream API owns the full
// lifecycle; anything not listed here passes through untouched.
const (
	OrderStatusPendingPayment   = "pending_payment"
	OrderStatusVerifyingPayment = "verifying_payment"
)

// Order is the read-only order row as returned by the upstream API.
type Order struct {
	ID           string    `json:"_id"`
	CustomerName string    `json:"customerName"`
	TotalPrice   float64   `json:"totalPrice"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// OrderPayload is the order-submission body handed to the upstream API once
// the form validates and the cart passes its preconditions. The service
// assembles it but never persists it.
type OrderPayload struct {
	CustomerName    string     `json:"customerName"`
	CustomerPhone   string     `json:"customerPhone"`
	CustomerEmail   string     `json:"customerEmail"`
	CustomerAddress string     `json:"customerAddress"`
	Note            string     `json:"note,omitempty"`
	Items           []CartItem `json:"items"`
	TotalPrice      float64    `json:"totalPrice"`
	ShippingCost    float64    `json:"shippingCost"`
}
