package admin_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetActivityLogs godoc
// @Summary Admin activity log
// @Description Every admin write, newest first, with before/after snapshots
// @Tags Admin - Activity
// @Produce json
// @Security BearerAuth
// @Param admin_id query string false "Admin ID"
// @Param resource_type query string false "brand, category, product, article, order..."
// @Param action query string false "e.g. updated_product"
// @Param status query string false "success or failed"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.ActivityLogResponse}
// @Router /admin/activity-logs [get]
func GetActivityLogs(c *gin.Context) {
	var filter models.ActivityLogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid query", err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	logs, total, err := services.ListActivityLogs(ctx, filter)
	if err != nil {
		config.Log.Error("[activity.list] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs retrieved successfully", logs,
		models.NewPagination(filter.Page, filter.Limit, total)))
}
