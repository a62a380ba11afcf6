package order_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PayOrder godoc
// @Summary Pay a pending order
// @Description Simulated card payment. Cards ending in 0000 are declined. A payment after the deadline expires the order instead.
// @Tags User - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param body body models.PayOrderRequest true "Card details"
// @Success 200 {object} models.ApiResponse{data=models.OrderDetail}
// @Failure 400 {object} models.ApiResponse "Invalid card"
// @Failure 402 {object} models.ApiResponse "Declined"
// @Failure 409 {object} models.ApiResponse "Not pending"
// @Failure 410 {object} models.ApiResponse "Expired"
// @Router /user/orders/{id}/pay [post]
func PayOrder(c *gin.Context) {
	userID, orderID, ok := requestScope(c)
	if !ok {
		return
	}
	var req models.PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := services.PayOrder(ctx, userID, orderID, req)
	if err != nil {
		status, msg := orderErrorStatus(err)
		if status == http.StatusInternalServerError {
			config.Log.Error("[orders.pay] failed", zap.String("order_id", orderID.String()), zap.Error(err))
		}
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	config.Log.Info("[orders.pay] paid", zap.String("order", order.OrderNumber))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Payment accepted", services.OrderDetail(order)))
}
