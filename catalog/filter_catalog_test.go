package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabin-cxmp/sourcing/models"
)

func groupByKey(groups []models.FilterGroup, key string) *models.FilterGroup {
	for i := range groups {
		if groups[i].Key == key {
			return &groups[i]
		}
	}
	return nil
}

func optionIDs(g *models.FilterGroup) []string {
	ids := make([]string, 0, len(g.Options))
	for _, o := range g.Options {
		ids = append(ids, o.ID)
	}
	return ids
}

func TestBuildFilterCatalog(t *testing.T) {
	t.Run("empty dataset yields no groups", func(t *testing.T) {
		cat := New(NewSnapshot(nil, nil))
		assert.Empty(t, cat.BuildFilterCatalog())
	})

	t.Run("dead options are omitted", func(t *testing.T) {
		cat := New(NewSnapshot(
			[]models.Product{
				{SupplierName: "Alpha", Type: "Bags", Handmade: "Yes"},
			},
			[]models.Exhibitor{
				{Name: "Alpha", MainCategory: "Jewellery", IsActive: true},
			},
		))

		groups := cat.BuildFilterCatalog()

		category := groupByKey(groups, GroupCategory)
		require.NotNil(t, category)
		assert.Equal(t, []string{"Jewellery"}, optionIDs(category))

		sustainability := groupByKey(groups, GroupSustainability)
		require.NotNil(t, sustainability)
		assert.Equal(t, []string{"handmade"}, optionIDs(sustainability))

		// No product has an origin, so the whole group disappears.
		assert.Nil(t, groupByKey(groups, GroupMadeIn))
	})

	t.Run("unconfigured category values never surface", func(t *testing.T) {
		cat := New(NewSnapshot(nil, []models.Exhibitor{
			{Name: "Alpha", MainCategory: "Something unlisted", IsActive: true},
		}))

		assert.Nil(t, groupByKey(cat.BuildFilterCatalog(), GroupCategory))
	})

	t.Run("compound origins surface every contained country", func(t *testing.T) {
		cat := New(NewSnapshot(
			[]models.Product{
				{SupplierName: "Alpha", Type: "Bags", MadeIn: "Made in China, Hong Kong"},
			},
			[]models.Exhibitor{{Name: "Alpha", IsActive: true}},
		))

		madeIn := groupByKey(cat.BuildFilterCatalog(), GroupMadeIn)
		require.NotNil(t, madeIn)
		assert.ElementsMatch(t, []string{"China", "Hong Kong"}, optionIDs(madeIn))
	})

	t.Run("options are sorted alphabetically", func(t *testing.T) {
		cat := New(NewSnapshot(
			nil,
			[]models.Exhibitor{
				{Name: "A", MainCategory: "Textile accessories", IsActive: true},
				{Name: "B", MainCategory: "Jewellery", IsActive: true},
				{Name: "C", MainCategory: "Bags / Leather goods", IsActive: true},
			},
		))

		category := groupByKey(cat.BuildFilterCatalog(), GroupCategory)
		require.NotNil(t, category)
		assert.Equal(t, []string{
			"Bags / Leather goods",
			"Jewellery",
			"Textile accessories",
		}, optionIDs(category))
	})
}
