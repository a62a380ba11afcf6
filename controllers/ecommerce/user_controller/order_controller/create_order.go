package order_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/middleware"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateOrder godoc
// @Summary Checkout
// @Description Turns the cart into a pending order: reserves stock, freezes prices, empties the cart and starts the payment countdown (expires_at).
// @Tags User - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreateOrderRequest true "Shipping address"
// @Success 201 {object} models.ApiResponse{data=models.OrderDetail}
// @Failure 400 {object} models.ApiResponse "Empty cart or invalid address"
// @Failure 409 {object} models.ApiResponse "Stock changed"
// @Router /user/orders [post]
func CreateOrder(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := services.Checkout(ctx, userID, req)
	if err != nil {
		status, msg := orderErrorStatus(err)
		if status == http.StatusInternalServerError {
			config.Log.Error("[orders.create] checkout failed", zap.String("user_id", userID.String()), zap.Error(err))
		}
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order created", services.OrderDetail(order)))
}
