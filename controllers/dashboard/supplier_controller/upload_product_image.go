package supplier_controller

import (
	"fmt"
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

const maxImageSize = 5 << 20 // 5 MB

// UploadProductImage godoc
// @Summary Upload a product image
// @Description Upload an image for one of the authenticated supplier's products. The image is stored on Cloudinary and its URL saved on the product.
// @Tags Dashboard - Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param image formData file true "Image file (max 5 MB)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /api/v1/dashboard/products/{id}/image [post]
func UploadProductImage(cloudinary *services.CloudinaryService, refresher *services.CatalogRefresher) gin.HandlerFunc {
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

		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "image file required"))
			return
		}
		if fileHeader.Size > maxImageSize {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image exceeds the 5 MB limit"))
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		var product models.SupplierProduct
		if err := config.Gorm.WithContext(ctx).
			Where("id = ? AND supplier_id = ?", productID, supplierID).
			First(&product).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
				return
			}
			log.Printf("[product.image] database error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			log.Printf("[product.image] failed to open upload: %v", err)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read image"))
			return
		}
		defer file.Close()

		url, err := cloudinary.UploadProductImage(ctx, file, fmt.Sprintf("product_%s", productID), supplierID)
		if err != nil {
			log.Printf("[product.image] upload failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
			return
		}

		if err := config.Gorm.WithContext(ctx).
			Model(&product).
			Update("image_url", url).Error; err != nil {
			log.Printf("[product.image] failed to save image URL: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
			return
		}

		refresher.RequestRefresh()

		log.Printf("[product.image] image uploaded for product %s", productID)

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Image uploaded successfully", gin.H{
			"image_url": url,
		}))
	}
}
