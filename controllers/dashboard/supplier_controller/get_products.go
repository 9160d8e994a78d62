package supplier_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gabin-cxmp/sourcing/config"
	"github.com/gabin-cxmp/sourcing/middleware"
	"github.com/gabin-cxmp/sourcing/models"
)

// GetProducts godoc
// @Summary List own products
// @Description Retrieve all products belonging to the authenticated supplier.
// @Tags Dashboard - Products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.SupplierProduct}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /api/v1/dashboard/products [get]
func GetProducts(c *gin.Context) {
	supplierID, ok := middleware.GetSupplierIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products := make([]models.SupplierProduct, 0)
	if err := config.Gorm.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("created_at ASC").
		Find(&products).Error; err != nil {
		log.Printf("[product.list] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", products))
}
