package dashboard

import "github.com/Godtasan552/selling-shirts-backend/models"

// DefaultPackageLimit is how many catalog products the storefront package
// strip shows.
const DefaultPackageLimit = 5

// DerivePackages maps the first limit products, in catalog order, onto the
// simplified package view. Price is the unweighted mean of the product's
// variant prices, 0 when it has none. limit <= 0 falls back to the default.
func DerivePackages(products []models.Product, limit int) []models.Package {
	if limit <= 0 {
		limit = DefaultPackageLimit
	}
	if limit > len(products) {
		limit = len(products)
	}

	packages := make([]models.Package, 0, limit)
	for _, p := range products[:limit] {
		packages = append(packages, models.Package{
			ID:          p.ID,
			Name:        p.Name,
			Price:       meanVariantPrice(p.Variants),
			Description: p.Description,
			Variants:    p.Variants,
		})
	}
	return packages
}

func meanVariantPrice(variants []models.Variant) float64 {
	if len(variants) == 0 {
		return 0
	}
	var sum float64
	for _, v := range variants {
		sum += v.Price
	}
	return sum / float64(len(variants))
}
