package storefront_routes

import (
	store_cart "github.com/Godtasan552/selling-shirts-backend/controllers/storefront/cart_controller"
	store_checkout "github.com/Godtasan552/selling-shirts-backend/controllers/storefront/checkout_controller"
	store_package "github.com/Godtasan552/selling-shirts-backend/controllers/storefront/package_controller"
	store_product "github.com/Godtasan552/selling-shirts-backend/controllers/storefront/product_controller"
	"github.com/Godtasan552/selling-shirts-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public; a bearer token is forwarded upstream when present)
	store := router.Group("/store")
	store.Use(middleware.UpstreamToken(false))

	// Catalog routes
	store.GET("/products", store_product.GetStorefrontProducts) // Full catalog snapshot
	store.GET("/packages", store_package.GetPackages)           // Derived package strip

	// Cart session routes
	carts := store.Group("/carts")
	{
		carts.POST("", store_cart.CreateCart)
		carts.GET("/:id", store_cart.GetCart)
		carts.POST("/:id/items", store_cart.AddCartItem)
		carts.DELETE("/:id/items/:index", store_cart.RemoveCartItem)
	}

	// Checkout routes
	store.POST("/checkout/validate", store_checkout.ValidateCheckout)
	store.POST("/checkout", store_checkout.SubmitCheckout)
}
