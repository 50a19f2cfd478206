package catalog_cache

import (
	"testing"

	"github.com/Godtasan552/selling-shirts-backend/models"
)

func TestSnapshotRoundTrip(t *testing.T) {
	Invalidate()
	if _, ok := GetSnapshot(); ok {
		t.Fatal("empty cache must miss")
	}

	SetSnapshot([]models.Product{{ID: "a"}, {ID: "b"}})
	products, ok := GetSnapshot()
	if !ok {
		t.Fatal("expected a cache hit after SetSnapshot")
	}
	if len(products) != 2 {
		t.Errorf("expected the whole snapshot back, got %d products", len(products))
	}

	Invalidate()
	if _, ok := GetSnapshot(); ok {
		t.Error("Invalidate must clear the snapshot")
	}
}
