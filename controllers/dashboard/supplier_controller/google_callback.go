package supplier_controller

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gabin-cxmp/sourcing/config"
	"github.com/gabin-cxmp/sourcing/models"
	"github.com/gabin-cxmp/sourcing/utils"
)

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Handles the callback from Google. Verifies the state token, exchanges the authorization code, verifies the ID token, matches the Google email against a registered supplier account, issues a JWT cookie, and redirects back to the dashboard.
// @Tags Dashboard - Auth
// @Produce json
// @Success 307 "Redirect to dashboard after successful login"
// @Failure 400 {object} models.ApiResponse "Invalid state or missing authorization code"
// @Router /api/v1/auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	savedState, err := c.Cookie("oauth_state")
	if err != nil || state != savedState {
		log.Printf("[supplier.google] state mismatch")
		redirectToDashboardWithError(c, "Invalid state token")
		return
	}

	// Clear state cookie
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		log.Printf("[supplier.google] no authorization code")
		redirectToDashboardWithError(c, "No authorization code")
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Printf("[supplier.google] code exchange failed: %v", err)
		redirectToDashboardWithError(c, "Failed to exchange token")
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		log.Printf("[supplier.google] no id_token in response")
		redirectToDashboardWithError(c, "No ID token returned")
		return
	}

	idToken, err := config.OIDCVerifier.Verify(context.Background(), rawIDToken)
	if err != nil {
		log.Printf("[supplier.google] ID token verification failed: %v", err)
		redirectToDashboardWithError(c, "Failed to verify identity")
		return
	}

	var claims struct {
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		log.Printf("[supplier.google] failed to parse claims: %v", err)
		redirectToDashboardWithError(c, "Failed to read identity")
		return
	}

	if !claims.EmailVerified {
		log.Printf("[supplier.google] unverified email: %s", claims.Email)
		redirectToDashboardWithError(c, "Google email is not verified")
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Only registered supplier accounts can sign in. No auto-provisioning.
	var supplier models.Supplier
	if err := config.Gorm.WithContext(ctx).
		Where("email = ?", claims.Email).
		First(&supplier).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.Printf("[supplier.google] no supplier account for: %s", claims.Email)
			redirectToDashboardWithError(c, "No supplier account for this email")
			return
		}
		log.Printf("[supplier.google] database error: %v", err)
		redirectToDashboardWithError(c, "Server error")
		return
	}

	if !supplier.IsActive {
		log.Printf("[supplier.google] deactivated account: %s", claims.Email)
		redirectToDashboardWithError(c, "Account is deactivated")
		return
	}

	jwtToken, err := utils.GenerateJWT(supplier.ID, supplier.Email, supplier.Name)
	if err != nil {
		log.Printf("[supplier.google] failed to generate token: %v", err)
		redirectToDashboardWithError(c, "Failed to generate token")
		return
	}

	isProd := os.Getenv("APP_ENV") == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"auth_token",
		jwtToken,
		24*60*60,
		"/",
		"",
		isProd,
		true,
	)

	log.Printf("[supplier.google] success: %s (%s)", supplier.Email, supplier.ID)

	c.Redirect(http.StatusTemporaryRedirect, config.GetFrontendURL())
}

func redirectToDashboardWithError(c *gin.Context, message string) {
	redirectURL := fmt.Sprintf("%s/login?error=%s", config.GetFrontendURL(), url.QueryEscape(message))
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
