// Package cart derives checkout totals from an ordered list of cart lines.
// Every operation returns a new cart value; totals are always recomputed
// from the full cart so they can never go stale independently of it.
package cart

import "github.com/Godtasan552/selling-shirts-backend/models"

// Shipping tier: flat base fee for the first unit, linear surcharge for
// every unit after it. Currency-agnostic minor units.
const (
	shippingBaseFee     = 50.0
	shippingPerUnitStep = 10.0
)

// AddItem appends item to the cart. Identical SKU/size lines are kept as
// separate positions, never merged.
func AddItem(c models.Cart, item models.CartItem) models.Cart {
	next := make(models.Cart, 0, len(c)+1)
	next = append(next, c...)
	next = append(next, item)
	return next
}

// RemoveItem drops the line at index. An out-of-range index is a silent
// no-op and returns the cart unchanged.
func RemoveItem(c models.Cart, index int) models.Cart {
	if index < 0 || index >= len(c) {
		return c
	}
	next := make(models.Cart, 0, len(c)-1)
	next = append(next, c[:index]...)
	next = append(next, c[index+1:]...)
	return next
}

// ComputeTotals reduces the cart snapshot to its quantity, subtotal,
// shipping cost and grand total. An empty cart ships for free.
func ComputeTotals(c models.Cart) models.CartTotals {
	var t models.CartTotals
	for _, item := range c {
		t.TotalQuantity += item.Quantity
		t.Subtotal += item.Price * float64(item.Quantity)
	}
	if t.TotalQuantity > 0 {
		t.ShippingCost = shippingBaseFee + float64(t.TotalQuantity-1)*shippingPerUnitStep
	}
	t.GrandTotal = t.Subtotal + t.ShippingCost
	return t
}
