// @title Selling Shirts Backend API
// @version 1.0
// @description Storefront and admin-panel backend for the shirt shop
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"time"

	"github.com/Godtasan552/selling-shirts-backend/config"
	"github.com/Godtasan552/selling-shirts-backend/middleware"
	"github.com/Godtasan552/selling-shirts-backend/routes/admin_routes"
	"github.com/Godtasan552/selling-shirts-backend/routes/storefront_routes"
	"github.com/Godtasan552/selling-shirts-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Upstream shop API client
	config.InitUpstream()
	services.InitShopAPI()
	// Redis connection (rate limiter, cart sessions, stats cache)
	config.ConnectRedis()

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Admin routes (rate limited like the rest of the panel)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	admin_routes.SetupDashboardRoutes(adminGroup)

	// Public storefront (no rate limiter)
	storefront_routes.SetupStorefrontRoutes(api)

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}
