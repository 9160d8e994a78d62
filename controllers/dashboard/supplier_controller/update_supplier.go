package supplier_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gabin-cxmp/sourcing/config"
	"github.com/gabin-cxmp/sourcing/middleware"
	"github.com/gabin-cxmp/sourcing/models"
	"github.com/gabin-cxmp/sourcing/services"
)

// UpdateSupplier godoc
// @Summary Update own supplier profile
// @Description Partially update the authenticated supplier's listing. Only provided fields change. The public directory refreshes shortly after.
// @Tags Dashboard - Supplier
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateRequest body models.UpdateSupplierRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.Supplier}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Supplier not found"
// @Router /api/v1/dashboard/supplier [patch]
func UpdateSupplier(refresher *services.CatalogRefresher) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplierID, ok := middleware.GetSupplierIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
			return
		}

		var req models.UpdateSupplierRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
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
			log.Printf("[supplier.update] database error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
			return
		}

		// Build updates from the provided fields only
		updates := map[string]interface{}{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Country != nil {
			updates["country"] = *req.Country
		}
		if req.Focus != nil {
			updates["focus"] = *req.Focus
		}
		if req.MainCategory != nil {
			updates["main_product_category"] = *req.MainCategory
		}
		if req.SecondaryCategory != nil {
			updates["secondary_product_category"] = *req.SecondaryCategory
		}
		if req.StandNumber != nil {
			updates["stand_number"] = *req.StandNumber
		}
		if req.ContactEmail != nil {
			updates["contact_email"] = *req.ContactEmail
		}
		if req.CompanyCertifications != nil {
			updates["company_certifications"] = *req.CompanyCertifications
		}

		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
			return
		}

		if err := config.Gorm.WithContext(ctx).
			Model(&supplier).
			Updates(updates).Error; err != nil {
			log.Printf("[supplier.update] failed to update: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
			return
		}

		// Public directory picks the change up after the debounce window
		refresher.RequestRefresh()

		log.Printf("[supplier.update] updated supplier %s (%d fields)", supplierID, len(updates))

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Supplier updated successfully", supplier))
	}
}
