package catalog

import (
	"github.com/gabin-cxmp/sourcing/models"
)

// DefaultPageSize matches the listing grid of the directory front end.
const DefaultPageSize = 12

// Page numbers visible in the pagination controls.
const (
	MaxVisiblePagesWide   = 5
	MaxVisiblePagesNarrow = 3
)

// Paginate slices the already-filtered exhibitor list into the requested
// page. It never re-runs filtering; it operates purely on its input.
// Pages outside the valid range yield an empty slice.
func Paginate(filtered []models.Exhibitor, page, pageSize int) (pageItems []models.Exhibitor, totalPages int) {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	totalPages = (len(filtered) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start >= len(filtered) {
		return []models.Exhibitor{}, totalPages
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], totalPages
}

// Window computes the page-button window centered on the current page:
// at most maxVisible consecutive page numbers, pulled back when the
// window would run short at the tail, plus first/last shortcuts and
// ellipsis flags when the window does not reach a boundary. With one
// page or fewer there are no controls and nil is returned.
func Window(current, totalPages, maxVisible int) *models.PageWindow {
	if totalPages <= 1 {
		return nil
	}
	if maxVisible < 1 {
		maxVisible = MaxVisiblePagesWide
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	startPage := current - maxVisible/2
	if startPage < 1 {
		startPage = 1
	}
	endPage := startPage + maxVisible - 1
	if endPage > totalPages {
		endPage = totalPages
	}
	// Pull the window back when it is short of maxVisible at the tail.
	if endPage-startPage+1 < maxVisible {
		startPage = endPage - maxVisible + 1
		if startPage < 1 {
			startPage = 1
		}
	}

	return &models.PageWindow{
		StartPage:    startPage,
		EndPage:      endPage,
		ShowFirst:    startPage > 1,
		LeadingGap:   startPage > 2,
		ShowLast:     endPage < totalPages,
		TrailingGap:  endPage < totalPages-1,
		BackDisabled: current == 1,
		NextDisabled: current == totalPages,
	}
}
