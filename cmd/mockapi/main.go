package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Godtasan552/selling-shirts-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main serves a fixture version of the upstream shop API so the backend can
// run end-to-end locally.
// Usage: go run cmd/mockapi/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("SELLING SHIRTS - Mock Upstream Shop API")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	port := os.Getenv("MOCK_API_PORT")
	if port == "" {
		port = "5000"
	}

	router := gin.Default()
	api := router.Group("/api")

	api.GET("/products", func(c *gin.Context) {
		c.JSON(http.StatusOK, fixtureProducts())
	})
	api.GET("/orders", func(c *gin.Context) {
		c.JSON(http.StatusOK, fixtureOrders())
	})
	api.GET("/users/count", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"count": 42})
	})
	api.POST("/orders", func(c *gin.Context) {
		var payload models.OrderPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
			return
		}
		fmt.Printf("✓ Order received: %s, %d items, total %.2f\n",
			payload.CustomerName, len(payload.Items), payload.TotalPrice)
		c.JSON(http.StatusCreated, gin.H{"orderId": uuid.NewString()})
	})

	fmt.Println("🚀 Mock shop API running on http://localhost:" + port + "/api")
	router.Run(":" + port)
}

func fixtureProducts() []models.Product {
	return []models.Product{
		{
			ID: "p-classic", Name: "Classic Tee", Description: "Plain cotton crew neck",
			Category: "basics", Status: models.ProductStatusActive,
			Variants: []models.Variant{
				{SKU: "CL-S-WHT", Size: "S", Color: "white", Price: 290, Quantity: 25},
				{SKU: "CL-M-WHT", Size: "M", Color: "white", Price: 290, Quantity: 40},
				{SKU: "CL-L-BLK", Size: "L", Color: "black", Price: 310, Quantity: 12},
			},
		},
		{
			ID: "p-logo", Name: "Logo Tee", Description: "Front print shop logo",
			Category: "graphics", Status: models.ProductStatusActive,
			Variants: []models.Variant{
				{SKU: "LG-M-NVY", Size: "M", Color: "navy", Price: 350, Quantity: 18},
				{SKU: "LG-L-NVY", Size: "L", Color: "navy", Price: 350, Quantity: 7},
			},
		},
		{
			ID: "p-retro", Name: "Retro Tee", Description: "Discontinued 90s run",
			Category: "graphics", Status: models.ProductStatusDiscontinued,
			Variants: []models.Variant{
				{SKU: "RT-L-RED", Size: "L", Color: "red", Price: 420, Quantity: 0},
			},
		},
	}
}

func fixtureOrders() []models.Order {
	now := time.Now()
	return []models.Order{
		{ID: "o-1001", CustomerName: "Somchai J.", TotalPrice: 650, Status: models.OrderStatusPendingPayment, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "o-1002", CustomerName: "Malee P.", TotalPrice: 1240, Status: models.OrderStatusVerifyingPayment, CreatedAt: now.Add(-26 * time.Hour)},
		{ID: "o-1003", CustomerName: "Anan K.", TotalPrice: 350, Status: "shipped", CreatedAt: now.Add(-72 * time.Hour)},
	}
}
