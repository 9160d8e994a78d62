package exhibitor_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gabin-cxmp/sourcing/catalog"
	"github.com/gabin-cxmp/sourcing/models"
)

// GetExhibitors godoc
// @Summary List exhibitors
// @Description Retrieve the filtered, paginated exhibitor list. Search matches supplier names first, then product types. Checkbox filters combine as a conjunction across filter families.
// @Tags Directory - Exhibitors
// @Produce json
// @Param q query string false "Search text (supplier name, then product type)"
// @Param category query []string false "Category checkbox ids" collectionFormat(multi)
// @Param sustainability query []string false "Sustainability checkbox ids" collectionFormat(multi)
// @Param madeIn query []string false "Made-in country filters" collectionFormat(multi)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Param narrow query bool false "Use the narrow 3-button pagination window"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/exhibitors [get]
func GetExhibitors(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		sel := parseSelection(c)
		page, limit := parsePagination(c)

		result := cat.Evaluate(sel)
		pageItems, totalPages := catalog.Paginate(result.Filtered, page, limit)

		meta := &models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      len(result.Filtered),
			TotalPages: totalPages,
			Window:     catalog.Window(page, totalPages, maxVisiblePages(c)),
		}

		data := gin.H{
			"exhibitors":     pageItems,
			"no_results":     result.NoResults,
			"export_enabled": result.ExportEnabled,
		}

		c.JSON(http.StatusOK, models.PaginatedResponse(c, "Exhibitors fetched successfully", data, meta))
	}
}
