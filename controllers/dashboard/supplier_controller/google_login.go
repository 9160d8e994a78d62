package supplier_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gabin-cxmp/sourcing/config"
	"github.com/gabin-cxmp/sourcing/models"
)

// GoogleLogin godoc
// @Summary Redirect to Google OAuth
// @Description Starts the Google sign-in flow for the supplier dashboard by generating a state token, storing it in a cookie, and redirecting to Google's consent page.
// @Tags Dashboard - Auth
// @Produce json
// @Success 307 "Temporary redirect to Google OAuth"
// @Failure 503 {object} models.ApiResponse "Google OAuth not configured"
// @Router /api/v1/auth/google [get]
func GoogleLogin(c *gin.Context) {
	if config.GoogleOAuthConfig == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Google sign-in is not configured"))
		return
	}

	// Generate state token
	state := uuid.New().String()

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"oauth_state",
		state,
		3600,
		"/",
		"",
		false,
		true,
	)

	url := config.GoogleOAuthConfig.AuthCodeURL(state)
	log.Printf("[supplier.google] redirecting to Google")

	c.Redirect(http.StatusTemporaryRedirect, url)
}
