package order_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/middleware"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type orderHistoryQuery struct {
	models.PageParams
	Status string `form:"status"`
}

// GetOrders godoc
// @Summary Order history
// @Tags User - Orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Only orders in this status"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.OrderHistoryResponse,meta=models.Pagination}
// @Router /user/orders [get]
func GetOrders(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	var query orderHistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid query", err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.DB.WithContext(ctx).Model(&models.Order{}).Where("user_id = ?", userID)
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		config.Log.Error("[orders.list] count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	var orders []models.Order
	if err := db.Preload("Items").
		Order("created_at DESC").
		Offset(query.Offset()).Limit(query.Limit).
		Find(&orders).Error; err != nil {
		config.Log.Error("[orders.list] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	out := make([]models.OrderHistoryResponse, len(orders))
	for i, o := range orders {
		count := 0
		for _, it := range o.Items {
			count += it.Quantity
		}
		out[i] = models.OrderHistoryResponse{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			Status:      o.Status,
			Total:       o.Total,
			TotalText:   utils.FormatPrice(o.Total),
			ItemCount:   count,
			ExpiresAt:   o.ExpiresAt,
			CreatedAt:   o.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders retrieved successfully", out,
		models.NewPagination(query.Page, query.Limit, total)))
}
