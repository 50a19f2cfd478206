package product_controller

import (
	"log"
	"net/http"

	catalog_cache "github.com/Godtasan552/selling-shirts-backend/cache"
	"github.com/Godtasan552/selling-shirts-backend/config"
	"github.com/Godtasan552/selling-shirts-backend/middleware"
	"github.com/Godtasan552/selling-shirts-backend/models"
	"github.com/Godtasan552/selling-shirts-backend/services"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary List storefront products
// @Description Returns the product catalog snapshot from the upstream shop API (cached)
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Product}
// @Failure 502 {object} models.ApiResponse
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	products, err := LoadCatalogSnapshot(c)
	if err != nil {
		log.Printf("[store.products] ERROR fetch catalog err=%v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", products))
}

// LoadCatalogSnapshot serves the cached catalog when it is still fresh and
// refreshes it wholesale otherwise. Shared with the package controller.
func LoadCatalogSnapshot(c *gin.Context) ([]models.Product, error) {
	if products, ok := catalog_cache.GetSnapshot(); ok {
		return products, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := services.FetchProducts(ctx, middleware.GetUpstreamToken(c))
	if err != nil {
		return nil, err
	}
	catalog_cache.SetSnapshot(products)
	return products, nil
}
