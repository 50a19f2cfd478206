package checkout

import (
	"errors"

	"github.com/Godtasan552/selling-shirts-backend/cart"
	"github.com/Godtasan552/selling-shirts-backend/models"
)

// ErrEmptyCart rejects submission before any payload is assembled. This is
// a precondition, not a validation error: there is no field to re-render.
var ErrEmptyCart = errors.New("cart has no items")

// BuildOrderPayload combines a validated form with the cart snapshot into
// the order-submission body. Totals are recomputed from the cart here, so
// the payload can never carry a total the items do not add up to.
func BuildOrderPayload(form models.CustomerForm, items models.Cart) (models.OrderPayload, error) {
	if len(items) == 0 {
		return models.OrderPayload{}, ErrEmptyCart
	}
	totals := cart.ComputeTotals(items)
	return models.OrderPayload{
		CustomerName:    form.CustomerName,
		CustomerPhone:   form.CustomerPhone,
		CustomerEmail:   form.CustomerEmail,
		CustomerAddress: form.CustomerAddress,
		Note:            form.Note,
		Items:           items,
		TotalPrice:      totals.GrandTotal,
		ShippingCost:    totals.ShippingCost,
	}, nil
}
