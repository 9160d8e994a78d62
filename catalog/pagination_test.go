package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabin-cxmp/sourcing/models"
)

func exhibitors(n int) []models.Exhibitor {
	list := make([]models.Exhibitor, n)
	for i := range list {
		list[i] = models.Exhibitor{Name: fmt.Sprintf("Supplier %03d", i+1), IsActive: true}
	}
	return list
}

func TestPaginate(t *testing.T) {
	t.Run("slices the requested page", func(t *testing.T) {
		items, totalPages := Paginate(exhibitors(30), 2, 12)
		require.Len(t, items, 12)
		assert.Equal(t, "Supplier 013", items[0].Name)
		assert.Equal(t, 3, totalPages)
	})

	t.Run("last page may be short", func(t *testing.T) {
		items, _ := Paginate(exhibitors(30), 3, 12)
		assert.Len(t, items, 6)
	})

	t.Run("exact multiple has no phantom page", func(t *testing.T) {
		_, totalPages := Paginate(exhibitors(24), 1, 12)
		assert.Equal(t, 2, totalPages)
	})

	t.Run("page out of range yields empty", func(t *testing.T) {
		items, totalPages := Paginate(exhibitors(10), 5, 12)
		assert.Empty(t, items)
		assert.Equal(t, 1, totalPages)
	})

	t.Run("junk page and size fall back to defaults", func(t *testing.T) {
		items, _ := Paginate(exhibitors(20), -3, 0)
		assert.Len(t, items, DefaultPageSize)
		assert.Equal(t, "Supplier 001", items[0].Name)
	})

	t.Run("empty input", func(t *testing.T) {
		items, totalPages := Paginate(nil, 1, 12)
		assert.Empty(t, items)
		assert.Equal(t, 0, totalPages)
	})
}

func TestWindow(t *testing.T) {
	t.Run("single page has no controls", func(t *testing.T) {
		assert.Nil(t, Window(1, 1, 5))
		assert.Nil(t, Window(1, 0, 5))
	})

	t.Run("centered in the middle", func(t *testing.T) {
		w := Window(5, 10, 5)
		require.NotNil(t, w)
		assert.Equal(t, 3, w.StartPage)
		assert.Equal(t, 7, w.EndPage)
		assert.True(t, w.ShowFirst)
		assert.True(t, w.LeadingGap)
		assert.True(t, w.ShowLast)
		assert.True(t, w.TrailingGap)
	})

	t.Run("clamped at the head", func(t *testing.T) {
		w := Window(1, 10, 5)
		require.NotNil(t, w)
		assert.Equal(t, 1, w.StartPage)
		assert.Equal(t, 5, w.EndPage)
		assert.False(t, w.ShowFirst)
		assert.False(t, w.LeadingGap)
		assert.True(t, w.BackDisabled)
	})

	t.Run("pulled back at the tail", func(t *testing.T) {
		w := Window(10, 10, 5)
		require.NotNil(t, w)
		assert.Equal(t, 6, w.StartPage)
		assert.Equal(t, 10, w.EndPage)
		assert.False(t, w.ShowLast)
		assert.False(t, w.TrailingGap)
		assert.True(t, w.NextDisabled)
	})

	t.Run("gap flags off when window touches the boundary neighbour", func(t *testing.T) {
		// Window starts at page 2: the first-page shortcut shows but
		// there is no gap to indicate.
		w := Window(4, 10, 5)
		require.NotNil(t, w)
		assert.Equal(t, 2, w.StartPage)
		assert.True(t, w.ShowFirst)
		assert.False(t, w.LeadingGap)
	})

	t.Run("fewer pages than the window", func(t *testing.T) {
		w := Window(2, 3, 5)
		require.NotNil(t, w)
		assert.Equal(t, 1, w.StartPage)
		assert.Equal(t, 3, w.EndPage)
		assert.False(t, w.ShowFirst)
		assert.False(t, w.ShowLast)
	})

	t.Run("narrow window", func(t *testing.T) {
		w := Window(5, 10, 3)
		require.NotNil(t, w)
		assert.Equal(t, 4, w.StartPage)
		assert.Equal(t, 6, w.EndPage)
	})

	t.Run("current page clamped into range", func(t *testing.T) {
		w := Window(99, 10, 5)
		require.NotNil(t, w)
		assert.Equal(t, 10, w.EndPage)
		assert.True(t, w.NextDisabled)
	})
}
