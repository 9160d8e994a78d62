package filter_cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabin-cxmp/sourcing/models"
)

func TestFilterCache(t *testing.T) {
	t.Cleanup(Invalidate)

	t.Run("miss before set", func(t *testing.T) {
		Invalidate()
		_, ok := Get()
		assert.False(t, ok)
	})

	t.Run("hit after set", func(t *testing.T) {
		groups := []models.FilterGroup{{Key: "category", Legend: "Category"}}
		Set(groups)

		got, ok := Get()
		require.True(t, ok)
		assert.Equal(t, groups, got)
	})

	t.Run("miss after invalidate", func(t *testing.T) {
		Set([]models.FilterGroup{{Key: "made-in"}})
		Invalidate()

		_, ok := Get()
		assert.False(t, ok)
	})
}
