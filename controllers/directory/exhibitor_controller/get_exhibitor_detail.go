package exhibitor_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gabin-cxmp/sourcing/catalog"
	"github.com/gabin-cxmp/sourcing/models"
)

// GetExhibitorDetail godoc
// @Summary Get exhibitor micro-view
// @Description Resolve a supplier by its URL-encoded name and return the micro-view payload: the exhibitor record, its joined products and the aggregated certification list.
// @Tags Directory - Exhibitors
// @Produce json
// @Param supplier-name query string true "URL-encoded supplier name"
// @Success 200 {object} models.ApiResponse{data=models.ExhibitorDetail}
// @Failure 400 {object} models.ApiResponse "Missing supplier-name"
// @Failure 404 {object} models.ApiResponse "Supplier not found"
// @Router /api/v1/exhibitors/detail [get]
func GetExhibitorDetail(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		param := c.Query("supplier-name")
		if param == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "supplier-name query parameter required"))
			return
		}

		ex := cat.ResolveSupplier(param)
		if ex == nil {
			log.Printf("[exhibitor.detail] supplier not found: %s", param)
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Supplier not found"))
			return
		}

		detail := cat.Detail(*ex)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Exhibitor detail fetched successfully", detail))
	}
}
