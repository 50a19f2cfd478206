package models

// CustomerForm carries the customer-supplied checkout fields. Note is the
// only optional field.
type CustomerForm struct {
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerAddress string `json:"customerAddress"`
	Note            string `json:"note,omitempty"`
}

// CheckoutRequest is the storefront checkout body: the customer form plus
// the cart session the customer built up.
type CheckoutRequest struct {
	CustomerForm
	CartID string `json:"cart_id" binding:"required"`
}

// CheckoutValidationResult is returned by the standalone validate endpoint
// so the storefront can re-render exactly the failed fields.
type CheckoutValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}
