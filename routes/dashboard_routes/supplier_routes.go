package dashboard_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gabin-cxmp/sourcing/controllers/dashboard/supplier_controller"
	"github.com/gabin-cxmp/sourcing/middleware"
	"github.com/gabin-cxmp/sourcing/services"
)

// SetupAuthRoutes registers the supplier authentication endpoints.
func SetupAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")

	auth.POST("/login", supplier_controller.SupplierLogin)
	auth.GET("/google", supplier_controller.GoogleLogin)
	auth.GET("/google/callback", supplier_controller.GoogleCallback)
	auth.POST("/logout", supplier_controller.SupplierLogout)
}

// SetupDashboardRoutes registers the authenticated supplier dashboard.
// Every mutation schedules a debounced refresh of the public catalog.
func SetupDashboardRoutes(rg *gin.RouterGroup, cloudinary *services.CloudinaryService, refresher *services.CatalogRefresher) {
	dashboard := rg.Group("/dashboard")
	dashboard.Use(middleware.SupplierAuth())
	{
		dashboard.GET("/supplier", supplier_controller.GetSupplier)
		dashboard.PATCH("/supplier", supplier_controller.UpdateSupplier(refresher))

		dashboard.GET("/products", supplier_controller.GetProducts)
		dashboard.POST("/products", supplier_controller.CreateProduct(refresher))
		dashboard.PATCH("/products/:id", supplier_controller.UpdateProduct(refresher))
		dashboard.DELETE("/products/:id", supplier_controller.DeleteProduct(refresher))
		dashboard.POST("/products/:id/image", supplier_controller.UploadProductImage(cloudinary, refresher))
	}
}
