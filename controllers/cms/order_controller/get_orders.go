package order_controller

import (
	"net/http"
	"strings"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type orderListQuery struct {
	models.PageParams
	Status string `form:"status"`
}

// GetOrders godoc
// @Summary Get orders (CMS)
// @Description All orders with customer details, newest first. Filter by status or search by order number, customer email or name.
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param status query string false "pending, paid, shipped, delivered, cancelled, expired"
// @Param q query string false "Search"
// @Success 200 {object} models.ApiResponse{data=[]models.AdminOrderRow,meta=models.Pagination}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	var query orderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid query", err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.DB.WithContext(ctx).Table("orders o").
		Joins("LEFT JOIN users u ON u.id = o.user_id")
	if s := strings.TrimSpace(query.Status); s != "" {
		db = db.Where("o.status = ?", s)
	}
	if q := strings.ToLower(strings.TrimSpace(query.Q)); q != "" {
		like := "%" + q + "%"
		db = db.Where("LOWER(o.order_number) LIKE ? OR LOWER(u.email) LIKE ? OR LOWER(u.name) LIKE ?", like, like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		config.Log.Error("[admin.orders] count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count orders"))
		return
	}

	rows := []models.AdminOrderRow{}
	err := db.Select(`o.id, o.order_number, o.status, o.total, o.expires_at, o.created_at,
		COALESCE(u.name, '') AS customer_name, COALESCE(u.email, '') AS customer_email,
		(SELECT COALESCE(SUM(oi.quantity), 0) FROM order_items oi WHERE oi.order_id = o.id) AS item_count`).
		Order("o.created_at DESC").
		Limit(query.Limit).Offset(query.Offset()).
		Scan(&rows).Error
	if err != nil {
		config.Log.Error("[admin.orders] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}
	for i := range rows {
		rows[i].TotalText = utils.FormatPrice(rows[i].Total)
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders retrieved successfully", rows,
		models.NewPagination(query.Page, query.Limit, total)))
}
