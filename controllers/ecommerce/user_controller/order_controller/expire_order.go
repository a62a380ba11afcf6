package order_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type expireOrderResponse struct {
	Order   models.OrderDetail `json:"order"`
	Expired bool               `json:"expired"`
}

// ExpireOrder godoc
// @Summary Expire a pending order
// @Description Called when the storefront countdown reaches zero. Puts the items back in the cart and releases the stock. Repeating the call, or calling it on an order that is no longer pending, changes nothing (expired=false).
// @Tags User - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse{data=expireOrderResponse}
// @Failure 404 {object} models.ApiResponse
// @Router /user/orders/{id}/expire [post]
func ExpireOrder(c *gin.Context) {
	userID, orderID, ok := requestScope(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, did, err := services.ExpireUserOrder(ctx, userID, orderID)
	if err != nil {
		status, msg := orderErrorStatus(err)
		if status == http.StatusInternalServerError {
			config.Log.Error("[orders.expire] failed", zap.String("order_id", orderID.String()), zap.Error(err))
		}
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	msg := "Order was not pending"
	if did {
		msg = "Order expired, items returned to cart"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, msg, expireOrderResponse{
		Order:   services.OrderDetail(order),
		Expired: did,
	}))
}
