package cart_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Godtasan552/selling-shirts-backend/cart"
	"github.com/Godtasan552/selling-shirts-backend/models"
	"github.com/Godtasan552/selling-shirts-backend/services"
	"github.com/gin-gonic/gin"
)

// GetCart godoc
// @Summary Get a cart session
// @Description Returns the cart lines with totals recomputed from the full snapshot
// @Tags store
// @Produce json
// @Param id path string true "Cart session ID"
// @Success 200 {object} models.ApiResponse{data=models.CartSession}
// @Failure 404 {object} models.ApiResponse
// @Router /store/carts/{id} [get]
func GetCart(c *gin.Context) {
	id := c.Param("id")

	items, err := services.GetCartSession(id)
	if errors.Is(err, services.ErrCartNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart not found"))
		return
	}
	if err != nil {
		log.Printf("[store.cart-get] ERROR id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load cart"))
		return
	}

	session := models.CartSession{ID: id, Items: items, Total: cart.ComputeTotals(items)}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", session))
}
