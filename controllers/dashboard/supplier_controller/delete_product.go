package supplier_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gabin-cxmp/sourcing/config"
	"github.com/gabin-cxmp/sourcing/middleware"
	"github.com/gabin-cxmp/sourcing/models"
	"github.com/gabin-cxmp/sourcing/services"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete one of the authenticated supplier's products. The public directory refreshes shortly after.
// @Tags Dashboard - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /api/v1/dashboard/products/{id} [delete]
func DeleteProduct(refresher *services.CatalogRefresher) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplierID, ok := middleware.GetSupplierIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
			return
		}

		productID := c.Param("id")
		if _, err := uuid.Parse(productID); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		result := config.Gorm.WithContext(ctx).
			Where("id = ? AND supplier_id = ?", productID, supplierID).
			Delete(&models.SupplierProduct{})
		if result.Error != nil {
			log.Printf("[product.delete] failed to delete: %v", result.Error)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}

		refresher.RequestRefresh()

		log.Printf("[product.delete] deleted product %s", productID)

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", nil))
	}
}
