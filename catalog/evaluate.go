package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/gabin-cxmp/sourcing/models"
)

// EvalResult is the outcome of one filter evaluation: the filtered
// exhibitor list (input order preserved), the no-results indicator, and
// whether the PDF export is currently allowed. Export requires at least
// one active filter or a search of three or more characters, and a
// non-empty result set.
type EvalResult struct {
	Filtered      []models.Exhibitor
	NoResults     bool
	ExportEnabled bool
}

// Evaluate applies the visitor's selection to the current snapshot and
// returns the filtered exhibitor set. Evaluation is synchronous, free
// of side effects on the snapshot, and order-preserving: the exhibitor
// list stays in its load-time alphabetical order.
func (c *Catalog) Evaluate(sel models.FilterSelection) EvalResult {
	snap := c.snapshot()

	searchNorm := Normalize(strings.TrimSpace(sel.SearchText))
	madeInNorm := make([]string, 0, len(sel.MadeInValues))
	for _, v := range sel.MadeInValues {
		if n := Normalize(strings.TrimSpace(v)); n != "" {
			madeInNorm = append(madeInNorm, n)
		}
	}

	filtered := make([]models.Exhibitor, 0, len(snap.Exhibitors))
	for _, ex := range snap.Exhibitors {
		products := snap.productsFor(ex.Name)

		if !matchesSearch(ex, products, searchNorm) {
			continue
		}
		if !matchesCategory(ex, sel.CategoryIDs) {
			continue
		}
		if !matchesMadeIn(products, madeInNorm) {
			continue
		}
		if !matchesSustainability(products, sel.SustainabilityIDs) {
			continue
		}
		filtered = append(filtered, ex)
	}

	// Character count, not byte count: accented input still needs
	// three typed characters before export unlocks.
	rawSearch := strings.TrimSpace(sel.SearchText)
	exportEnabled := (sel.HasSelectedFilters() || utf8.RuneCountInString(rawSearch) >= 3) && len(filtered) > 0

	return EvalResult{
		Filtered:      filtered,
		NoResults:     len(filtered) == 0,
		ExportEnabled: exportEnabled,
	}
}

// matchesSearch checks the exhibitor name first and only falls back to
// scanning product types when the cheap name check fails.
func matchesSearch(ex models.Exhibitor, products []models.Product, searchNorm string) bool {
	if searchNorm == "" {
		return true
	}
	if strings.Contains(Normalize(ex.Name), searchNorm) {
		return true
	}
	for _, p := range products {
		if strings.Contains(Normalize(p.Type), searchNorm) {
			return true
		}
	}
	return false
}

// matchesCategory compares the raw field value against the selected
// checkbox ids. No normalization here: the checkbox id is the literal
// field value.
func matchesCategory(ex models.Exhibitor, categoryIDs []string) bool {
	if len(categoryIDs) == 0 {
		return true
	}
	for _, id := range categoryIDs {
		if ex.MainCategory == id {
			return true
		}
	}
	return false
}

// matchesMadeIn requires an exact per-segment match: a product origin is
// split on commas and each normalized segment is compared for equality
// against the selected countries. This is stricter than the substring
// containment used when discovering the available options; both
// behaviors are kept as-is.
func matchesMadeIn(products []models.Product, madeInNorm []string) bool {
	if len(madeInNorm) == 0 {
		return true
	}
	for _, p := range products {
		for _, segment := range strings.Split(p.MadeIn, ",") {
			segNorm := Normalize(strings.TrimSpace(segment))
			if segNorm == "" {
				continue
			}
			for _, want := range madeInNorm {
				if segNorm == want {
					return true
				}
			}
		}
	}
	return false
}

// matchesSustainability is a conjunction across the selected filters and
// a disjunction across the supplier's products: every checked attribute
// must be satisfied by at least one product, possibly a different
// product per attribute.
func matchesSustainability(products []models.Product, sustainabilityIDs []string) bool {
	if len(sustainabilityIDs) == 0 {
		return true
	}

	pending := make(map[string]bool, len(sustainabilityIDs))
	for _, id := range sustainabilityIDs {
		pending[id] = true
	}
	// Unknown ids can never be satisfied.
	checks := make(map[string]func(models.Product) bool, len(SustainabilityFilters))
	for _, f := range SustainabilityFilters {
		checks[f.ID] = f.Check
	}
	for id := range pending {
		if _, known := checks[id]; !known {
			return false
		}
	}

	for _, p := range products {
		if len(pending) == 0 {
			break
		}
		for id := range pending {
			if checks[id](p) {
				delete(pending, id)
			}
		}
	}
	return len(pending) == 0
}
