package checkout_controller

import (
	"net/http"

	"github.com/Godtasan552/selling-shirts-backend/checkout"
	"github.com/Godtasan552/selling-shirts-backend/models"
	"github.com/gin-gonic/gin"
)

// ValidateCheckout godoc
// @Summary Validate the checkout form without submitting
// @Description Runs every field rule independently so the storefront can re-render exactly the failed fields
// @Tags store
// @Accept json
// @Produce json
// @Param form body models.CustomerForm true "Customer checkout form"
// @Success 200 {object} models.ApiResponse{data=models.CheckoutValidationResult}
// @Failure 400 {object} models.ApiResponse
// @Router /store/checkout/validate [post]
func ValidateCheckout(c *gin.Context) {
	var form models.CustomerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	errs := checkout.ValidateForm(form)
	result := models.CheckoutValidationResult{Valid: len(errs) == 0, Errors: errs}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Validation complete", result))
}
