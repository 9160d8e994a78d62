package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabin-cxmp/sourcing/models"
)

func testCatalog() *Catalog {
	exhibitors := []models.Exhibitor{
		{Name: "Atelier Écru", Country: "France", MainCategory: "Ready-to-wear", IsActive: true},
		{Name: "Noir Studio", Country: "Italy", MainCategory: "Bags / Leather goods", IsActive: true},
		{Name: "Supplier X", Country: "Portugal", MainCategory: "Textile accessories", IsActive: true},
	}
	products := []models.Product{
		{SupplierName: "Atelier Écru", Type: "Knitwear", MadeIn: "France"},
		{SupplierName: "Noir Studio", Type: "Leather bags", MadeIn: "Made in China, Hong Kong"},
		// Supplier X: product A organic, product B handmade. Together they
		// satisfy organic+handmade even though no single product does.
		{SupplierName: "Supplier X", Type: "Ribbons", RecycledOrganic: "Organic cotton", MadeIn: "Portugal"},
		{SupplierName: "Supplier X", Type: "Trims", Handmade: "Yes", MadeIn: "Portugal"},
	}
	return New(NewSnapshot(products, exhibitors))
}

func names(list []models.Exhibitor) []string {
	out := make([]string, 0, len(list))
	for _, ex := range list {
		out = append(out, ex.Name)
	}
	return out
}

func TestEvaluateEmptySelection(t *testing.T) {
	cat := testCatalog()

	result := cat.Evaluate(models.FilterSelection{})

	// Identity: the full list in alphabetical order.
	assert.Equal(t, []string{"Atelier Écru", "Noir Studio", "Supplier X"}, names(result.Filtered))
	assert.False(t, result.NoResults)
	assert.False(t, result.ExportEnabled)
}

func TestEvaluateSearch(t *testing.T) {
	cat := testCatalog()

	t.Run("matches supplier name accent-insensitively", func(t *testing.T) {
		result := cat.Evaluate(models.FilterSelection{SearchText: "ecru"})
		assert.Equal(t, []string{"Atelier Écru"}, names(result.Filtered))
	})

	t.Run("falls back to product type", func(t *testing.T) {
		result := cat.Evaluate(models.FilterSelection{SearchText: "leather"})
		assert.Equal(t, []string{"Noir Studio"}, names(result.Filtered))
	})

	t.Run("no match sets the no-results flag", func(t *testing.T) {
		result := cat.Evaluate(models.FilterSelection{SearchText: "zzz"})
		assert.True(t, result.NoResults)
		assert.Empty(t, result.Filtered)
	})
}

func TestEvaluateCategory(t *testing.T) {
	cat := testCatalog()

	t.Run("raw exact membership", func(t *testing.T) {
		result := cat.Evaluate(models.FilterSelection{CategoryIDs: []string{"Ready-to-wear"}})
		assert.Equal(t, []string{"Atelier Écru"}, names(result.Filtered))
	})

	t.Run("multiple ids are a disjunction", func(t *testing.T) {
		result := cat.Evaluate(models.FilterSelection{
			CategoryIDs: []string{"Ready-to-wear", "Textile accessories"},
		})
		assert.Equal(t, []string{"Atelier Écru", "Supplier X"}, names(result.Filtered))
	})
}

func TestEvaluateMadeIn(t *testing.T) {
	cat := testCatalog()

	t.Run("matches a comma-separated segment exactly", func(t *testing.T) {
		result := cat.Evaluate(models.FilterSelection{MadeInValues: []string{"Hong Kong"}})
		assert.Equal(t, []string{"Noir Studio"}, names(result.Filtered))
	})

	t.Run("no substring match against a segment", func(t *testing.T) {
		// "Made in China" is a full segment; selecting "China" must not
		// match it because segments are compared for equality.
		result := cat.Evaluate(models.FilterSelection{MadeInValues: []string{"China"}})
		assert.Empty(t, result.Filtered)
	})

	t.Run("plain origin matches", func(t *testing.T) {
		result := cat.Evaluate(models.FilterSelection{MadeInValues: []string{"France"}})
		assert.Equal(t, []string{"Atelier Écru"}, names(result.Filtered))
	})
}

func TestEvaluateSustainability(t *testing.T) {
	cat := testCatalog()

	t.Run("different products may satisfy different filters", func(t *testing.T) {
		result := cat.Evaluate(models.FilterSelection{
			SustainabilityIDs: []string{"organic", "handmade"},
		})
		assert.Equal(t, []string{"Supplier X"}, names(result.Filtered))
	})

	t.Run("conjunction across filters", func(t *testing.T) {
		result := cat.Evaluate(models.FilterSelection{
			SustainabilityIDs: []string{"organic", "recycled"},
		})
		// Supplier X has organic but nothing recycled.
		assert.Empty(t, result.Filtered)
	})

	t.Run("unknown id never matches", func(t *testing.T) {
		result := cat.Evaluate(models.FilterSelection{
			SustainabilityIDs: []string{"vegan"},
		})
		assert.Empty(t, result.Filtered)
	})
}

func TestEvaluateIdempotent(t *testing.T) {
	cat := testCatalog()
	sel := models.FilterSelection{SustainabilityIDs: []string{"handmade"}}

	first := cat.Evaluate(sel)
	second := cat.Evaluate(sel)

	assert.Equal(t, names(first.Filtered), names(second.Filtered))
}

func TestExportEnabled(t *testing.T) {
	cat := testCatalog()

	t.Run("disabled with neither filter nor search", func(t *testing.T) {
		result := cat.Evaluate(models.FilterSelection{})
		assert.False(t, result.ExportEnabled)
	})

	t.Run("disabled with short search", func(t *testing.T) {
		result := cat.Evaluate(models.FilterSelection{SearchText: "at"})
		assert.False(t, result.ExportEnabled)
	})

	t.Run("disabled with two accented characters", func(t *testing.T) {
		// "éc" is three bytes but only two characters.
		result := cat.Evaluate(models.FilterSelection{SearchText: "éc"})
		require.NotEmpty(t, result.Filtered)
		assert.False(t, result.ExportEnabled)
	})

	t.Run("enabled with three accented characters", func(t *testing.T) {
		result := cat.Evaluate(models.FilterSelection{SearchText: "écr"})
		require.NotEmpty(t, result.Filtered)
		assert.True(t, result.ExportEnabled)
	})

	t.Run("enabled with three character search and results", func(t *testing.T) {
		result := cat.Evaluate(models.FilterSelection{SearchText: "ate"})
		require.NotEmpty(t, result.Filtered)
		assert.True(t, result.ExportEnabled)
	})

	t.Run("enabled with a checkbox filter and results", func(t *testing.T) {
		result := cat.Evaluate(models.FilterSelection{CategoryIDs: []string{"Ready-to-wear"}})
		require.NotEmpty(t, result.Filtered)
		assert.True(t, result.ExportEnabled)
	})

	t.Run("disabled when filtered set is empty", func(t *testing.T) {
		result := cat.Evaluate(models.FilterSelection{SearchText: "zzzz"})
		assert.False(t, result.ExportEnabled)
	})
}
