package exhibitor_controller

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gabin-cxmp/sourcing/catalog"
	"github.com/gabin-cxmp/sourcing/models"
)

// parseSelection maps the query string onto the filter selection value
// object. Checkbox params accept both repetition (?category=a&category=b)
// and comma lists (?category=a,b).
func parseSelection(c *gin.Context) models.FilterSelection {
	return models.FilterSelection{
		SearchText:        c.Query("q"),
		CategoryIDs:       multiValueQuery(c, "category"),
		SustainabilityIDs: multiValueQuery(c, "sustainability"),
		MadeInValues:      multiValueQuery(c, "madeIn"),
	}
}

func multiValueQuery(c *gin.Context, key string) []string {
	values := make([]string, 0)
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				values = append(values, part)
			}
		}
	}
	return values
}

// parsePagination validates page/limit, falling back to the directory
// defaults on junk input.
func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(catalog.DefaultPageSize)))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = catalog.DefaultPageSize
	}
	return page, limit
}

// maxVisiblePages picks the pagination window width. Narrow clients
// (the mobile layout) ask for the 3-button window via ?narrow=true.
func maxVisiblePages(c *gin.Context) int {
	if c.Query("narrow") == "true" {
		return catalog.MaxVisiblePagesNarrow
	}
	return catalog.MaxVisiblePagesWide
}
