package catalog_cache

import (
	"sync"
	"time"

	"github.com/Godtasan552/selling-shirts-backend/models"
)

const TTL = 5 * time.Minute

// ── Catalog snapshot cache ───────────────────────────────────────────────────
// Stores the full product catalog fetched from the upstream API. Both the
// storefront product list and the package strip read from this; the snapshot
// is always swapped wholesale so readers never see a half-refreshed catalog.

type snapshotEntry struct {
	products  []models.Product
	fetchedAt time.Time
}

var (
	snapMu    sync.RWMutex
	snapCache *snapshotEntry
)

func GetSnapshot() ([]models.Product, bool) {
	snapMu.RLock()
	defer snapMu.RUnlock()
	if snapCache != nil && time.Since(snapCache.fetchedAt) < TTL {
		return snapCache.products, true
	}
	return nil, false
}

func SetSnapshot(products []models.Product) {
	snapMu.Lock()
	defer snapMu.Unlock()
	snapCache = &snapshotEntry{products: products, fetchedAt: time.Now()}
}

// ── Invalidate (exposed for tools and tests) ─────────────────────────────────

func Invalidate() {
	snapMu.Lock()
	snapCache = nil
	snapMu.Unlock()
}
