package order_controller

import (
	"errors"
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UpdateOrderStatus godoc
// @Summary Change order status (CMS)
// @Description Allowed: pending→cancelled, paid→shipped|cancelled, shipped→delivered. Cancelling restocks the items.
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param body body models.UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} models.ApiResponse{data=models.OrderDetail}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Transition not allowed"
// @Router /admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := services.TransitionOrder(ctx, id, req.Status)
	if errors.Is(err, services.ErrInvalidTransition) {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, err.Error()))
		return
	}
	if err != nil {
		status, msg := utils.DBErrorStatus(err, "Order")
		if status == http.StatusInternalServerError {
			config.Log.Error("[admin.orders.status] failed", zap.String("id", id.String()), zap.Error(err))
		}
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	config.Log.Info("[admin.orders.status] updated",
		zap.String("order", order.OrderNumber), zap.String("status", order.Status))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated", services.OrderDetail(order)))
}
