package dashboard_controller

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/Godtasan552/selling-shirts-backend/config"
	"github.com/Godtasan552/selling-shirts-backend/dashboard"
	"github.com/Godtasan552/selling-shirts-backend/middleware"
	"github.com/Godtasan552/selling-shirts-backend/models"
	"github.com/Godtasan552/selling-shirts-backend/services"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// The computed record is cached whole for a short window. It is never
// patched in place: a refresh always refetches the full snapshot and
// reruns the aggregation.
const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 30 * time.Second
)

// GetDashboardStats godoc
// @Summary Get dashboard statistics
// @Description Fetches products, orders and the user count in parallel and reduces them into one summary record
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.DashboardStats}
// @Failure 502 {object} models.ApiResponse
// @Router /admin/dashboard/stats [get]
func GetDashboardStats(c *gin.Context) {
	log.Printf("[admin.dashboard-stats] start")

	if cached, err := config.RedisClient.Get(config.Ctx, statsCacheKey).Bytes(); err == nil {
		var stats models.DashboardStats
		if json.Unmarshal(cached, &stats) == nil {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard stats fetched (cached)", stats))
			return
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()
	token := middleware.GetUpstreamToken(c)

	// Fetch the three snapshots in parallel. The aggregation only runs
	// once every fetch has completed, so it never sees a partial snapshot.
	var (
		products  []models.Product
		orders    []models.Order
		userCount int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = services.FetchProducts(gctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = services.FetchOrders(gctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		userCount, err = services.FetchUserCount(gctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[admin.dashboard-stats] ERROR snapshot fetch err=%v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch dashboard data"))
		return
	}

	stats := dashboard.Aggregate(products, orders, userCount)

	if raw, err := json.Marshal(stats); err == nil {
		if err := config.RedisClient.Set(config.Ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
			log.Printf("[admin.dashboard-stats] WARN cache write err=%v", err)
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard stats fetched successfully", stats))
}
