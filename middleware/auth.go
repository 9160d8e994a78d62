package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gabin-cxmp/sourcing/models"
	"github.com/gabin-cxmp/sourcing/utils"
)

// SupplierAuth validates the supplier JWT from cookie or Authorization header
func SupplierAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		// Try to get token from cookie first
		cookieToken, err := c.Cookie("auth_token")
		if err == nil && cookieToken != "" {
			token = cookieToken
		} else {
			// Fallback to Authorization header
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization header required"))
				c.Abort()
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid authorization header format"))
				c.Abort()
				return
			}

			token = parts[1]
		}

		// Validate token
		claims, err := utils.ValidateJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			c.Abort()
			return
		}

		// Set supplier info in context
		c.Set("supplierID", claims.SupplierID)
		c.Set("supplierEmail", claims.Email)
		c.Set("supplierName", claims.Name)

		c.Next()
	}
}

func GetSupplierIDFromContext(c *gin.Context) (string, bool) {
	supplierID, exists := c.Get("supplierID")
	if !exists {
		return "", false
	}
	return supplierID.(string), true
}

func GetSupplierEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get("supplierEmail")
	if !exists {
		return "", false
	}
	return email.(string), true
}
