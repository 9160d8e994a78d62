package supplier_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gabin-cxmp/sourcing/models"
)

// SupplierLogout godoc
// @Summary Logout
// @Description Clear the supplier auth cookie.
// @Tags Dashboard - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/auth/logout [post]
func SupplierLogout(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out successfully", nil))
}
