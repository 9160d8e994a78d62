package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	filter_cache "github.com/gabin-cxmp/sourcing/cache"
	"github.com/gabin-cxmp/sourcing/catalog"
	"github.com/gabin-cxmp/sourcing/models"
	"github.com/gabin-cxmp/sourcing/utils"
)

// DefaultRefreshDelay coalesces bursts of dashboard edits into a single
// catalog rebuild.
const DefaultRefreshDelay = 2 * time.Second

// LoaderFunc produces the raw product and exhibitor collections from one
// of the configured sources.
type LoaderFunc func(ctx context.Context) ([]models.Product, []models.Exhibitor, error)

// CatalogRefresher owns the in-memory catalog lifecycle: the initial boot
// load and the debounced rebuilds triggered by dashboard mutations.
type CatalogRefresher struct {
	catalog   *catalog.Catalog
	load      LoaderFunc
	debouncer *utils.Debouncer
}

func NewCatalogRefresher(cat *catalog.Catalog, load LoaderFunc, delay time.Duration) *CatalogRefresher {
	r := &CatalogRefresher{catalog: cat, load: load}
	r.debouncer = utils.NewDebouncer(delay, r.refresh)
	return r
}

// LoaderForSource picks a loader from the CATALOG_SOURCE env
// (csv | database). CSV is the default, matching the published sheet
// exports the directory originally ran on.
func LoaderForSource() (LoaderFunc, error) {
	source := os.Getenv("CATALOG_SOURCE")
	switch source {
	case "", "csv":
		return LoadCatalogFromCSV, nil
	case "database":
		return LoadCatalogFromDB, nil
	default:
		return nil, fmt.Errorf("unknown CATALOG_SOURCE %q (want csv or database)", source)
	}
}

// RefreshDelayFromEnv reads CATALOG_REFRESH_DELAY_MS, falling back to the
// default when unset or invalid.
func RefreshDelayFromEnv() time.Duration {
	raw := os.Getenv("CATALOG_REFRESH_DELAY_MS")
	if raw == "" {
		return DefaultRefreshDelay
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		log.Printf("[catalog_refresher] invalid CATALOG_REFRESH_DELAY_MS %q, using default", raw)
		return DefaultRefreshDelay
	}
	return time.Duration(ms) * time.Millisecond
}

// LoadNow performs a synchronous load and swap. Called once at boot,
// before routes attach; a failure here is fatal upstream.
func (r *CatalogRefresher) LoadNow(ctx context.Context) error {
	products, exhibitors, err := r.load(ctx)
	if err != nil {
		return err
	}
	r.catalog.Replace(catalog.NewSnapshot(products, exhibitors))
	filter_cache.Invalidate()
	log.Printf("[catalog_refresher] catalog loaded: %d exhibitors", len(r.catalog.Exhibitors()))
	return nil
}

// RequestRefresh schedules a rebuild after the debounce delay. Repeated
// calls within the window collapse into one rebuild.
func (r *CatalogRefresher) RequestRefresh() {
	r.debouncer.Trigger()
}

// Stop cancels any pending rebuild. Used on shutdown.
func (r *CatalogRefresher) Stop() {
	r.debouncer.Stop()
}

func (r *CatalogRefresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	products, exhibitors, err := r.load(ctx)
	if err != nil {
		// keep serving the previous snapshot
		log.Printf("[catalog_refresher] refresh failed: %v", err)
		return
	}

	r.catalog.Replace(catalog.NewSnapshot(products, exhibitors))
	filter_cache.Invalidate()
	log.Printf("[catalog_refresher] catalog refreshed: %d exhibitors", len(r.catalog.Exhibitors()))
}
