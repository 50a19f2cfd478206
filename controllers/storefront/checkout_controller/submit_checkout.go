package checkout_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Godtasan552/selling-shirts-backend/checkout"
	"github.com/Godtasan552/selling-shirts-backend/config"
	"github.com/Godtasan552/selling-shirts-backend/middleware"
	"github.com/Godtasan552/selling-shirts-backend/models"
	"github.com/Godtasan552/selling-shirts-backend/services"
	"github.com/gin-gonic/gin"
)

// SubmitCheckout godoc
// @Summary Submit the checkout
// @Description Validates the form, checks cart preconditions, assembles the order payload and submits it upstream
// @Tags store
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Customer form plus cart session id"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 422 {object} models.ApiResponse{data=models.CheckoutValidationResult}
// @Failure 502 {object} models.ApiResponse
// @Router /store/checkout [post]
func SubmitCheckout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	// Field validation blocks submission but is never fatal: the storefront
	// re-renders the failed fields from the error map.
	if errs := checkout.ValidateForm(req.CustomerForm); len(errs) > 0 {
		resp := models.ErrorResponse(c, "Checkout form has errors")
		resp.Data = models.CheckoutValidationResult{Valid: false, Errors: errs}
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}

	items, err := services.GetCartSession(req.CartID)
	if errors.Is(err, services.ErrCartNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart not found"))
		return
	}
	if err != nil {
		log.Printf("[store.checkout] ERROR load cart id=%s err=%v", req.CartID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load cart"))
		return
	}

	payload, err := checkout.BuildOrderPayload(req.CustomerForm, items)
	if errors.Is(err, checkout.ErrEmptyCart) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart is empty"))
		return
	}
	if err != nil {
		log.Printf("[store.checkout] ERROR build payload cart=%s err=%v", req.CartID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to assemble order"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	orderID, err := services.SubmitOrder(ctx, middleware.GetUpstreamToken(c), payload)
	if err != nil {
		log.Printf("[store.checkout] ERROR submit order cart=%s err=%v", req.CartID, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to submit order"))
		return
	}

	// The session is done; a failed delete is harmless, the TTL cleans up.
	services.DeleteCartSession(req.CartID)

	log.Printf("[store.checkout] order created id=%s items=%d total=%.2f", orderID, len(payload.Items), payload.TotalPrice)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order submitted successfully", gin.H{"order_id": orderID}))
}
