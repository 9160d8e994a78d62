package supplier_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gabin-cxmp/sourcing/config"
	"github.com/gabin-cxmp/sourcing/middleware"
	"github.com/gabin-cxmp/sourcing/models"
)

// GetSupplier godoc
// @Summary Get own supplier profile
// @Description Retrieve the authenticated supplier's listing details.
// @Tags Dashboard - Supplier
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.Supplier}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Supplier not found"
// @Router /api/v1/dashboard/supplier [get]
func GetSupplier(c *gin.Context) {
	supplierID, ok := middleware.GetSupplierIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var supplier models.Supplier
	if err := config.Gorm.WithContext(ctx).
		Where("id = ?", supplierID).
		First(&supplier).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Supplier not found"))
			return
		}
		log.Printf("[supplier.get] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Supplier fetched successfully", supplier))
}
