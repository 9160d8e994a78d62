// @title Sourcing Directory API
// @version 1.0
// @description Trade-show exhibitor directory and supplier dashboard API
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gabin-cxmp/sourcing/catalog"
	"github.com/gabin-cxmp/sourcing/config"
	_ "github.com/gabin-cxmp/sourcing/docs"
	"github.com/gabin-cxmp/sourcing/middleware"
	"github.com/gabin-cxmp/sourcing/routes/dashboard_routes"
	"github.com/gabin-cxmp/sourcing/routes/directory_routes"
	"github.com/gabin-cxmp/sourcing/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()

	// Redis connection (rate limiter)
	config.ConnectRedis()

	// Initialize Cloudinary service
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	cloudinaryService, err := services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Cloudinary: %v", err)
	}
	log.Println("✅ Cloudinary initialized")

	// JWT secret must be present before any login can work
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	// Google sign-in for the supplier dashboard
	config.InitGoogleOAuth()

	// Load the catalog before any route attaches. A failed initial load
	// is fatal: the directory never serves a partial dataset.
	loader, err := services.LoaderForSource()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	cat := catalog.New(catalog.NewSnapshot(nil, nil))
	refresher := services.NewCatalogRefresher(cat, loader, services.RefreshDelayFromEnv())
	defer refresher.Stop()

	loadCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	if err := refresher.LoadNow(loadCtx); err != nil {
		cancel()
		log.Fatalf("❌ Failed to load catalog: %v", err)
	}
	cancel()

	// CORS for the directory front end and the dashboard
	corsCfg := cors.Config{
		AllowOrigins: []string{
			os.Getenv("DIRECTORY_URL"),
			config.GetFrontendURL(),
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")

	// Public directory (rate limited)
	directoryGroup := api.Group("")
	directoryGroup.Use(middleware.RateLimiter(300, time.Minute))
	directory_routes.SetupExhibitorRoutes(directoryGroup, cat)
	log.Println("✅ Directory routes registered")

	// Supplier dashboard (tighter rate limit, login endpoints included)
	dashboardGroup := api.Group("")
	dashboardGroup.Use(middleware.RateLimiter(120, time.Minute))
	dashboard_routes.SetupAuthRoutes(dashboardGroup)
	dashboard_routes.SetupDashboardRoutes(dashboardGroup, cloudinaryService, refresher)
	log.Println("✅ Dashboard routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	router.Run(":" + port)
}
