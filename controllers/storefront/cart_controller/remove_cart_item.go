package cart_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Godtasan552/selling-shirts-backend/cart"
	"github.com/Godtasan552/selling-shirts-backend/models"
	"github.com/Godtasan552/selling-shirts-backend/services"
	"github.com/gin-gonic/gin"
)

// RemoveCartItem godoc
// @Summary Remove a line from a cart session by position
// @Description Out-of-range positions are a silent no-op and return the cart unchanged
// @Tags store
// @Produce json
// @Param id path string true "Cart session ID"
// @Param index path int true "Zero-based line position"
// @Success 200 {object} models.ApiResponse{data=models.CartSession}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/carts/{id}/items/{index} [delete]
func RemoveCartItem(c *gin.Context) {
	id := c.Param("id")

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid line position"))
		return
	}

	items, err := services.GetCartSession(id)
	if errors.Is(err, services.ErrCartNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart not found"))
		return
	}
	if err != nil {
		log.Printf("[store.cart-remove] ERROR id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load cart"))
		return
	}

	items = cart.RemoveItem(items, index)
	if err := services.SaveCartSession(id, items); err != nil {
		log.Printf("[store.cart-remove] ERROR save id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save cart"))
		return
	}

	session := models.CartSession{ID: id, Items: items, Total: cart.ComputeTotals(items)}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", session))
}
