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

// CreateProduct godoc
// @Summary Create a product
// @Description Add a product to the authenticated supplier's listing. The public directory refreshes shortly after.
// @Tags Dashboard - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productRequest body models.SupplierProductRequest true "Product fields"
// @Success 201 {object} models.ApiResponse{data=models.SupplierProduct}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /api/v1/dashboard/products [post]
func CreateProduct(refresher *services.CatalogRefresher) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplierID, ok := middleware.GetSupplierIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
			return
		}

		var req models.SupplierProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
			return
		}

		sid, err := uuid.Parse(supplierID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		product := models.SupplierProduct{
			SupplierID:                sid,
			ReferenceName:             req.ReferenceName,
			Type:                      req.Type,
			Material:                  req.Material,
			MaterialSecondary:         req.MaterialSecondary,
			Specifications:            req.Specifications,
			Finishing:                 req.Finishing,
			ProductionVolumes:         req.ProductionVolumes,
			MadeIn:                    req.MadeIn,
			RecycledOrganic:           req.RecycledOrganic,
			RawMaterialCertifications: req.RawMaterialCertifications,
			OtherCertifications:       req.OtherCertifications,
			Handmade:                  req.Handmade,
			WhiteLabel:                req.WhiteLabel,
			LimitedEdition:            req.LimitedEdition,
			Deadstock:                 req.Deadstock,
		}

		if err := config.Gorm.WithContext(ctx).Create(&product).Error; err != nil {
			log.Printf("[product.create] failed to create: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
			return
		}

		refresher.RequestRefresh()

		log.Printf("[product.create] created product %s for supplier %s", product.ID, supplierID)

		c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
	}
}
