package package_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Godtasan552/selling-shirts-backend/controllers/storefront/product_controller"
	"github.com/Godtasan552/selling-shirts-backend/dashboard"
	"github.com/Godtasan552/selling-shirts-backend/models"
	"github.com/gin-gonic/gin"
)

// GetPackages godoc
// @Summary Get storefront packages
// @Description Derives the simplified package strip from the first N catalog products
// @Tags store
// @Produce json
// @Param limit query int false "How many packages to derive" default(5)
// @Success 200 {object} models.ApiResponse{data=[]models.Package}
// @Failure 502 {object} models.ApiResponse
// @Router /store/packages [get]
func GetPackages(c *gin.Context) {
	limit := dashboard.DefaultPackageLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	products, err := product_controller.LoadCatalogSnapshot(c)
	if err != nil {
		log.Printf("[store.packages] ERROR fetch catalog err=%v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch packages"))
		return
	}

	packages := dashboard.DerivePackages(products, limit)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Packages fetched successfully", packages))
}
