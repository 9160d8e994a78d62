package catalog

import (
	"sort"
	"strings"
	"sync"

	"github.com/gabin-cxmp/sourcing/models"
)

// Snapshot is one immutable load of the directory data: the flat
// product collection plus the deduplicated, alphabetically sorted
// exhibitor list derived from it. Snapshots are never mutated after
// construction; a refresh builds a new one and swaps it in.
type Snapshot struct {
	Products   []models.Product
	Exhibitors []models.Exhibitor

	// productsByName indexes products by normalized supplier name so the
	// join inside the filtering loops stays cheap on every keystroke.
	productsByName map[string][]models.Product
}

// NewSnapshot builds a snapshot from loader output. Exhibitor rows with
// an empty name are dropped, duplicates (same normalized name) keep the
// first occurrence, inactive exhibitors are excluded, and the result is
// sorted alphabetically by normalized name.
func NewSnapshot(products []models.Product, exhibitors []models.Exhibitor) *Snapshot {
	seen := make(map[string]bool, len(exhibitors))
	unique := make([]models.Exhibitor, 0, len(exhibitors))
	for _, ex := range exhibitors {
		if strings.TrimSpace(ex.Name) == "" || !ex.IsActive {
			continue
		}
		key := Normalize(ex.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, ex)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return Normalize(unique[i].Name) < Normalize(unique[j].Name)
	})

	byName := make(map[string][]models.Product, len(unique))
	for _, p := range products {
		key := Normalize(p.SupplierName)
		if key == "" {
			continue
		}
		byName[key] = append(byName[key], p)
	}

	return &Snapshot{
		Products:       products,
		Exhibitors:     unique,
		productsByName: byName,
	}
}

// ProductsFor returns every product belonging to the named supplier,
// matched by normalized name equality over the full collection. It
// returns all matches regardless of how many there are or where they
// sit in the collection — an earlier revision of this join sliced a
// fixed row window starting at the first match, which silently dropped
// or mixed in unrelated rows for suppliers with an unusual product
// count. The result is empty (never nil-dereferencing for callers) when
// no product matches.
func ProductsFor(supplierName string, products []models.Product) []models.Product {
	key := Normalize(supplierName)
	matched := make([]models.Product, 0)
	for _, p := range products {
		if Normalize(p.SupplierName) == key {
			matched = append(matched, p)
		}
	}
	return matched
}

// Catalog owns the current snapshot. All reads go through RLock; the
// only writer is the refresher calling Replace. There is no ambient
// package-level state: one Catalog instance is constructed after the
// initial load and handed to the controllers.
type Catalog struct {
	mu   sync.RWMutex
	snap *Snapshot
}

func New(snap *Snapshot) *Catalog {
	return &Catalog{snap: snap}
}

// Replace atomically swaps in a freshly loaded snapshot.
func (c *Catalog) Replace(snap *Snapshot) {
	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()
}

// Exhibitors returns the full, alphabetically ordered exhibitor list of
// the current snapshot. Callers must treat it as read-only.
func (c *Catalog) Exhibitors() []models.Exhibitor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap.Exhibitors
}

// Products returns the flat product collection of the current snapshot.
func (c *Catalog) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap.Products
}

// ProductsForSupplier returns all products joined to the named supplier
// in the current snapshot. Safe to call repeatedly from filtering loops.
func (c *Catalog) ProductsForSupplier(supplierName string) []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if matched, ok := c.snap.productsByName[Normalize(supplierName)]; ok {
		return matched
	}
	return []models.Product{}
}

// snapshot hands the current snapshot to read paths that need a
// consistent view across several accesses.
func (c *Catalog) snapshot() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

func (s *Snapshot) productsFor(supplierName string) []models.Product {
	if matched, ok := s.productsByName[Normalize(supplierName)]; ok {
		return matched
	}
	return []models.Product{}
}
