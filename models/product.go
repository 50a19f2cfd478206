package models

// Variant is a specific size/color combination of a product with its own
// price and stock quantity. SKU is unique within a product.
type Variant struct {
	SKU      string  `json:"sku"`
	Size     string  `json:"size"`
	Color    string  `json:"color,omitempty"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Product statuses as returned by the upstream catalog API.
const (
	ProductStatusActive       = "active"
	ProductStatusInactive     = "inactive"
	ProductStatusDiscontinued = "discontinued"
)

// Product mirrors the upstream catalog document. Variants may be missing or
// null when the upstream schema drifts; consumers must treat that as empty.
type Product struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Variants    []Variant `json:"variants"`
}
