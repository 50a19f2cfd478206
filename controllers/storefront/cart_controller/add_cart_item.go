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

// AddCartItem godoc
// @Summary Add a line to a cart session
// @Description Appends the item as a new line. Identical SKU lines stay separate.
// @Tags store
// @Accept json
// @Produce json
// @Param id path string true "Cart session ID"
// @Param item body models.CartItem true "Item snapshot copied from a variant"
// @Success 200 {object} models.ApiResponse{data=models.CartSession}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/carts/{id}/items [post]
func AddCartItem(c *gin.Context) {
	id := c.Param("id")

	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid cart item: quantity must be at least 1 and price above 0"))
		return
	}

	items, err := services.GetCartSession(id)
	if errors.Is(err, services.ErrCartNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart not found"))
		return
	}
	if err != nil {
		log.Printf("[store.cart-add] ERROR id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load cart"))
		return
	}

	items = cart.AddItem(items, item)
	if err := services.SaveCartSession(id, items); err != nil {
		log.Printf("[store.cart-add] ERROR save id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save cart"))
		return
	}

	session := models.CartSession{ID: id, Items: items, Total: cart.ComputeTotals(items)}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", session))
}
