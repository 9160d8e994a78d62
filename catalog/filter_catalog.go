package catalog

import (
	"sort"
	"strings"

	"github.com/gabin-cxmp/sourcing/models"
)

// BuildFilterCatalog computes, for the current snapshot, the set of
// filter options worth displaying. The algorithm is deliberately
// two-pass per group: first the configured candidate list, then a
// presence check against the live data. Groups that end up with zero
// options are omitted entirely, so an empty dataset yields an empty
// catalog.
func (c *Catalog) BuildFilterCatalog() []models.FilterGroup {
	snap := c.snapshot()

	groups := make([]models.FilterGroup, 0, 3)

	if opts := availableCategories(snap); len(opts) > 0 {
		groups = append(groups, models.FilterGroup{
			Key:     GroupCategory,
			Legend:  "Category",
			Options: opts,
		})
	}
	if opts := availableSustainability(snap); len(opts) > 0 {
		groups = append(groups, models.FilterGroup{
			Key:     GroupSustainability,
			Legend:  "Sustainability",
			Options: opts,
		})
	}
	if opts := availableMadeIn(snap); len(opts) > 0 {
		groups = append(groups, models.FilterGroup{
			Key:     GroupMadeIn,
			Legend:  "Made In",
			Options: opts,
		})
	}

	return groups
}

// availableCategories intersects the configured category values against
// the values actually present on exhibitors. The checkbox id is the raw
// field value: evaluation matches it against the exhibitor field
// exactly, without normalization.
func availableCategories(snap *Snapshot) []models.FilterOption {
	present := make(map[string]bool)
	for _, ex := range snap.Exhibitors {
		if v := strings.TrimSpace(ex.MainCategory); v != "" {
			present[v] = true
		}
	}

	// Candidate pass in configured order, then locale-style sort for
	// display like the filter panel renders them.
	retained := make([]string, 0, len(CategoryValues))
	for _, v := range CategoryValues {
		if present[v] {
			retained = append(retained, v)
		}
	}
	sortOptionsAlphabetically(retained)

	opts := make([]models.FilterOption, 0, len(retained))
	for _, v := range retained {
		opts = append(opts, models.FilterOption{ID: v, Label: v})
	}
	return opts
}

// availableSustainability keeps a computed filter iff at least one
// exhibitor has at least one product passing its predicate.
func availableSustainability(snap *Snapshot) []models.FilterOption {
	retained := make([]SustainabilityFilter, 0, len(SustainabilityFilters))
	for _, f := range SustainabilityFilters {
		if anyExhibitorHasProduct(snap, f.Check) {
			retained = append(retained, f)
		}
	}

	sort.SliceStable(retained, func(i, j int) bool {
		return Normalize(retained[i].Label) < Normalize(retained[j].Label)
	})

	opts := make([]models.FilterOption, 0, len(retained))
	for _, f := range retained {
		opts = append(opts, models.FilterOption{ID: f.ID, Label: f.Label})
	}
	return opts
}

func anyExhibitorHasProduct(snap *Snapshot, check func(models.Product) bool) bool {
	for _, ex := range snap.Exhibitors {
		for _, p := range snap.productsFor(ex.Name) {
			if check(p) {
				return true
			}
		}
	}
	return false
}

// availableMadeIn scans every product of every exhibitor and retains a
// candidate country iff some product's normalized origin contains the
// normalized country as a substring. Discovery is looser than the
// evaluator's exact per-segment match on purpose: compound origins like
// "Made in China, Hong Kong" must still surface both countries as
// options.
func availableMadeIn(snap *Snapshot) []models.FilterOption {
	available := make(map[string]bool)
	for _, ex := range snap.Exhibitors {
		for _, p := range snap.productsFor(ex.Name) {
			madeIn := strings.TrimSpace(p.MadeIn)
			if madeIn == "" {
				continue
			}
			normalized := Normalize(madeIn)
			for _, country := range MadeInCountries {
				if available[country] {
					continue
				}
				if strings.Contains(normalized, Normalize(country)) {
					available[country] = true
				}
			}
		}
	}

	retained := make([]string, 0, len(available))
	for _, country := range MadeInCountries {
		if available[country] {
			retained = append(retained, country)
		}
	}
	sortOptionsAlphabetically(retained)

	opts := make([]models.FilterOption, 0, len(retained))
	for _, country := range retained {
		opts = append(opts, models.FilterOption{ID: country, Label: country})
	}
	return opts
}

func sortOptionsAlphabetically(values []string) {
	sort.SliceStable(values, func(i, j int) bool {
		return Normalize(values[i]) < Normalize(values[j])
	})
}
