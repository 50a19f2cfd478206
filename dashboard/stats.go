// Package dashboard reduces catalog and order snapshots into the admin
// summary record and the simplified storefront package view. Every function
// here is a pure pass over immutable inputs; refreshing means recomputing
// the whole record, never patching part of it.
package dashboard

import "github.com/Godtasan552/selling-shirts-backend/models"

// pendingStatuses are the order states that still need admin attention.
var pendingStatuses = map[string]bool{
	models.OrderStatusPendingPayment:   true,
	models.OrderStatusVerifyingPayment: true,
}

// Aggregate reduces the full product and order snapshot into DashboardStats
// in a single pass. totalUsers comes from its own collaborator and is
// carried through untouched.
//
// TotalRevenue is a stock valuation (price × quantity on hand per variant),
// not sales revenue. AverageProductPrice is a mean of per-product means, so
// a one-variant product and a ten-variant product weigh the same.
// Nil or empty collections produce zeros, never an error.
func Aggregate(products []models.Product, orders []models.Order, totalUsers int) models.DashboardStats {
	stats := models.DashboardStats{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
		TotalUsers:    totalUsers,
	}

	var meanSum float64
	for _, p := range products {
		var priceSum float64
		for _, v := range p.Variants {
			stats.TotalInventory += v.Quantity
			stats.TotalRevenue += v.Price * float64(v.Quantity)
			priceSum += v.Price
		}
		if len(p.Variants) > 0 {
			meanSum += priceSum / float64(len(p.Variants))
		}
	}
	if len(products) > 0 {
		stats.AverageProductPrice = meanSum / float64(len(products))
	}

	for _, o := range orders {
		if pendingStatuses[o.Status] {
			stats.PendingOrders++
		}
	}
	return stats
}
