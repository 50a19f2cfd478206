package admin_routes

import (
	"github.com/Godtasan552/selling-shirts-backend/controllers/admin/dashboard_controller"
	"github.com/Godtasan552/selling-shirts-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupDashboardRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	dashboard.Use(middleware.UpstreamToken(true))

	dashboard.GET("/stats", dashboard_controller.GetDashboardStats)
}
