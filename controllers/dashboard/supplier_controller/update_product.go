package supplier_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gabin-cxmp/sourcing/config"
	"github.com/gabin-cxmp/sourcing/middleware"
	"github.com/gabin-cxmp/sourcing/models"
	"github.com/gabin-cxmp/sourcing/services"
)

// UpdateProduct godoc
// @Summary Update a product
// @Description Partially update one of the authenticated supplier's products. Only provided fields change. The public directory refreshes shortly after.
// @Tags Dashboard - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param updateRequest body models.UpdateSupplierProductRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.SupplierProduct}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /api/v1/dashboard/products/{id} [patch]
func UpdateProduct(refresher *services.CatalogRefresher) gin.HandlerFunc {
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

		var req models.UpdateSupplierProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		// Ownership check: the product must belong to the caller
		var product models.SupplierProduct
		if err := config.Gorm.WithContext(ctx).
			Where("id = ? AND supplier_id = ?", productID, supplierID).
			First(&product).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
				return
			}
			log.Printf("[product.update] database error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
			return
		}

		updates := map[string]interface{}{}
		if req.ReferenceName != nil {
			updates["reference_name"] = *req.ReferenceName
		}
		if req.Type != nil {
			updates["type"] = *req.Type
		}
		if req.Material != nil {
			updates["material"] = *req.Material
		}
		if req.MaterialSecondary != nil {
			updates["material_secondary"] = *req.MaterialSecondary
		}
		if req.Specifications != nil {
			updates["specifications"] = *req.Specifications
		}
		if req.Finishing != nil {
			updates["finishing"] = *req.Finishing
		}
		if req.ProductionVolumes != nil {
			updates["production_volumes"] = *req.ProductionVolumes
		}
		if req.MadeIn != nil {
			updates["made_in"] = *req.MadeIn
		}
		if req.RecycledOrganic != nil {
			updates["recycled_organic"] = *req.RecycledOrganic
		}
		if req.RawMaterialCertifications != nil {
			updates["raw_material_certifications"] = *req.RawMaterialCertifications
		}
		if req.OtherCertifications != nil {
			updates["other_raw_material_certifications"] = *req.OtherCertifications
		}
		if req.Handmade != nil {
			updates["handmade"] = *req.Handmade
		}
		if req.WhiteLabel != nil {
			updates["private_label_white_label"] = *req.WhiteLabel
		}
		if req.LimitedEdition != nil {
			updates["limited_edition"] = *req.LimitedEdition
		}
		if req.Deadstock != nil {
			updates["deadstock"] = *req.Deadstock
		}

		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
			return
		}

		if err := config.Gorm.WithContext(ctx).
			Model(&product).
			Updates(updates).Error; err != nil {
			log.Printf("[product.update] failed to update: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
			return
		}

		refresher.RequestRefresh()

		log.Printf("[product.update] updated product %s (%d fields)", productID, len(updates))

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
	}
}
