package filter_cache

import (
	"sync"
	"time"

	"github.com/gabin-cxmp/sourcing/models"
)

const TTL = 5 * time.Minute

// ── Filter catalog cache ─────────────────────────────────────────────────────
// Stores the built filter groups for the directory. The build walks every
// exhibitor and every product, so GetFilters serves from here between
// catalog refreshes.

type entry struct {
	groups    []models.FilterGroup
	fetchedAt time.Time
}

var (
	mu    sync.RWMutex
	cache *entry
)

func Get() ([]models.FilterGroup, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if cache != nil && time.Since(cache.fetchedAt) < TTL {
		return cache.groups, true
	}
	return nil, false
}

func Set(groups []models.FilterGroup) {
	mu.Lock()
	defer mu.Unlock()
	cache = &entry{groups: groups, fetchedAt: time.Now()}
}

// ── Invalidate (call on any catalog replacement) ─────────────────────────────

func Invalidate() {
	mu.Lock()
	cache = nil
	mu.Unlock()
}
