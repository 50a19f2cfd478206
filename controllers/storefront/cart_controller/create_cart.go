package cart_controller

import (
	"log"
	"net/http"

	"github.com/Godtasan552/selling-shirts-backend/cart"
	"github.com/Godtasan552/selling-shirts-backend/models"
	"github.com/Godtasan552/selling-shirts-backend/services"
	"github.com/gin-gonic/gin"
)

// CreateCart godoc
// @Summary Start a checkout cart session
// @Description Creates an empty Redis-backed cart session and returns its id
// @Tags store
// @Produce json
// @Success 201 {object} models.ApiResponse{data=models.CartSession}
// @Failure 500 {object} models.ApiResponse
// @Router /store/carts [post]
func CreateCart(c *gin.Context) {
	id, err := services.CreateCartSession()
	if err != nil {
		log.Printf("[store.cart-create] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create cart"))
		return
	}

	session := models.CartSession{
		ID:    id,
		Items: models.Cart{},
		Total: cart.ComputeTotals(models.Cart{}),
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Cart created", session))
}
