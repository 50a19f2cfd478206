package models

// DashboardStats is the admin dashboard summary record. It is recomputed
// wholesale from a full snapshot on every refresh and never patched
// incrementally.
type DashboardStats struct {
	TotalProducts       int     `json:"total_products"`
	TotalInventory      int     `json:"total_inventory"`
	TotalRevenue        float64 `json:"total_revenue"`         // stock valuation: Σ price × quantity-on-hand
	AverageProductPrice float64 `json:"average_product_price"` // mean of per-product variant-price means
	TotalOrders         int     `json:"total_orders"`
	PendingOrders       int     `json:"pending_orders"`
	TotalUsers          int     `json:"total_users"`
}

// Package is the simplified storefront view derived from the first N
// catalog products. It holds no stock accounting of its own.
type Package struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"` // mean variant price, 0 if the product has no variants
	Description string    `json:"description"`
	Variants    []Variant `json:"variants"`
}
