package exhibitor_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	filter_cache "github.com/gabin-cxmp/sourcing/cache"
	"github.com/gabin-cxmp/sourcing/catalog"
	"github.com/gabin-cxmp/sourcing/models"
)

// GetFilters godoc
// @Summary Get the filter catalog
// @Description Retrieve the filter groups (category, sustainability, made-in) with only the options that match at least one exhibitor in the loaded dataset. Dead checkboxes are never emitted.
// @Tags Directory - Exhibitors
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.FilterGroup}
// @Router /api/v1/exhibitors/filters [get]
func GetFilters(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		if groups, ok := filter_cache.Get(); ok {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters fetched successfully", groups))
			return
		}

		groups := cat.BuildFilterCatalog()
		filter_cache.Set(groups)

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters fetched successfully", groups))
	}
}
