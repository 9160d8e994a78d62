package directory_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gabin-cxmp/sourcing/catalog"
	"github.com/gabin-cxmp/sourcing/controllers/directory/exhibitor_controller"
)

// SetupExhibitorRoutes registers the public directory endpoints. All of
// them read the in-memory catalog; none touch the database.
func SetupExhibitorRoutes(rg *gin.RouterGroup, cat *catalog.Catalog) {
	exhibitors := rg.Group("/exhibitors")

	exhibitors.GET("", exhibitor_controller.GetExhibitors(cat))
	exhibitors.GET("/detail", exhibitor_controller.GetExhibitorDetail(cat))
	exhibitors.GET("/filters", exhibitor_controller.GetFilters(cat))
	exhibitors.GET("/export", exhibitor_controller.ExportExhibitorsPDF(cat))
}
