package dashboard

import (
	"testing"

	"github.com/Godtasan552/selling-shirts-backend/models"
)

func catalog(n int) []models.Product {
	products := make([]models.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, models.Product{
			ID:          string(rune('a' + i)),
			Name:        "Shirt " + string(rune('A'+i)),
			Description: "desc",
			Variants: []models.Variant{
				{SKU: "s", Price: 100, Quantity: 1},
				{SKU: "m", Price: 200, Quantity: 1},
			},
		})
	}
	return products
}

func TestDerivePackages_TakesFirstNInCatalogOrder(t *testing.T) {
	got := DerivePackages(catalog(8), 5)
	if len(got) != 5 {
		t.Fatalf("expected 5 packages, got %d", len(got))
	}
	if got[0].ID != "a" || got[4].ID != "e" {
		t.Errorf("packages must keep catalog order, got %s..%s", got[0].ID, got[4].ID)
	}
}

func TestDerivePackages_FewerProductsThanLimit(t *testing.T) {
	got := DerivePackages(catalog(2), 5)
	if len(got) != 2 {
		t.Fatalf("expected 2 packages, got %d", len(got))
	}
}

func TestDerivePackages_ZeroLimitUsesDefault(t *testing.T) {
	got := DerivePackages(catalog(9), 0)
	if len(got) != DefaultPackageLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultPackageLimit, len(got))
	}
}

func TestDerivePackages_PriceIsMeanVariantPrice(t *testing.T) {
	got := DerivePackages(catalog(1), 5)
	if got[0].Price != 150 {
		t.Errorf("package price: got %v, want 150", got[0].Price)
	}
}

func TestDerivePackages_NoVariantsMeansZeroPrice(t *testing.T) {
	products := []models.Product{{ID: "x", Name: "Empty"}}
	got := DerivePackages(products, 5)
	if got[0].Price != 0 {
		t.Errorf("variant-less product price: got %v, want 0", got[0].Price)
	}
	if len(got[0].Variants) != 0 {
		t.Errorf("expected no variants, got %d", len(got[0].Variants))
	}
}

func TestDerivePackages_EmptyCatalog(t *testing.T) {
	if got := DerivePackages(nil, 5); len(got) != 0 {
		t.Fatalf("expected no packages, got %d", len(got))
	}
}
