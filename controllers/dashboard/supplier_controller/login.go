package supplier_controller

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gabin-cxmp/sourcing/config"
	"github.com/gabin-cxmp/sourcing/models"
	"github.com/gabin-cxmp/sourcing/services"
	"github.com/gabin-cxmp/sourcing/utils"
)

// SupplierLogin godoc
// @Summary Login as supplier
// @Description Authenticate a supplier with email and password. Returns a JWT and sets it as an HTTP-only cookie.
// @Tags Dashboard - Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.SupplierLoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid credentials"
// @Failure 403 {object} models.ApiResponse "Account deactivated"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/v1/auth/login [post]
func SupplierLogin(c *gin.Context) {
	log.Printf("[supplier.login] attempt")

	var req models.SupplierLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Find supplier by email
	var supplier models.Supplier
	if err := config.Gorm.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&supplier).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.Printf("[supplier.login] supplier not found: %s", req.Email)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		} else {
			log.Printf("[supplier.login] database error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		}
		return
	}

	if !supplier.IsActive {
		log.Printf("[supplier.login] deactivated account attempt: %s", req.Email)
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account is deactivated"))
		return
	}

	// Verify password
	if !services.VerifySupplierPassword(supplier.PasswordHash, req.Password) {
		log.Printf("[supplier.login] invalid password: %s", req.Email)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	// Generate JWT token
	token, err := utils.GenerateJWT(supplier.ID, supplier.Email, supplier.Name)
	if err != nil {
		log.Printf("[supplier.login] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Set token in HTTP-only cookie
	isProd := os.Getenv("APP_ENV") == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"auth_token",
		token,
		24*60*60,
		"/",
		"",
		isProd,
		true,
	)

	log.Printf("[supplier.login] success: %s (%s)", supplier.Email, supplier.ID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", gin.H{
		"supplier": supplier,
		"token":    token,
	}))
}
