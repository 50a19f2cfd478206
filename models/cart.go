package models

// CartItem is an independent snapshot copied from a variant at add-time.
// It is not linked back to live stock.
type CartItem struct {
	ProductID string  `json:"product_id" binding:"required"`
	SKU       string  `json:"sku" binding:"required"`
	Size      string  `json:"size"`
	Name      string  `json:"name"`
	Price     float64 `json:"price" binding:"required,gt=0"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
}

// Cart is an ordered list of items. Insertion order is display order and
// position is the only item identity; duplicate SKU lines are kept separate.
type Cart []CartItem

// CartTotals is always derived from the full cart, never stored on its own.
type CartTotals struct {
	TotalQuantity int     `json:"total_quantity"`
	Subtotal      float64 `json:"subtotal"`
	ShippingCost  float64 `json:"shipping_cost"`
	GrandTotal    float64 `json:"grand_total"`
}

// CartSession is the Redis-backed checkout-session view of a cart.
type CartSession struct {
	ID    string     `json:"id"`
	Items Cart       `json:"items"`
	Total CartTotals `json:"totals"`
}
