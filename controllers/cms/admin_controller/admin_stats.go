package admin_controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetDashboardStats godoc
// @Summary Dashboard summary
// @Description Order counts per status, revenue, catalog and customer totals
// @Tags Admin - Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.DashboardStats}
// @Router /admin/stats [get]
func GetDashboardStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	stats, err := services.DashboardStats(ctx)
	if err != nil {
		config.Log.Error("[admin.stats] failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stats retrieved successfully", stats))
}

// GetTopProducts godoc
// @Summary Best sellers
// @Tags Admin - Stats
// @Produce json
// @Security BearerAuth
// @Param limit query int false "How many" default(5)
// @Success 200 {object} models.ApiResponse{data=[]models.TopProduct}
// @Router /admin/stats/top-products [get]
func GetTopProducts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 5
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	top, err := services.TopProducts(ctx, limit)
	if err != nil {
		config.Log.Error("[admin.stats.top] failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch top products"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Top products retrieved successfully", top))
}

// GetMonthlyRevenue godoc
// @Summary Revenue for the last 12 months
// @Tags Admin - Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.MonthlyRevenueData}
// @Failure 503 {object} models.ApiResponse
// @Router /admin/stats/monthly-revenue [get]
func GetMonthlyRevenue(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	months, err := services.MonthlyRevenue(ctx)
	if errors.Is(err, services.ErrReportingUnavailable) {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Reporting database not available"))
		return
	}
	if err != nil {
		config.Log.Error("[admin.stats.monthly] failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch monthly revenue"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Monthly revenue retrieved successfully", months))
}
