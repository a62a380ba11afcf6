package order_controller

import (
	"errors"
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/middleware"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func orderErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		return http.StatusBadRequest, "Cart is empty"
	case errors.Is(err, services.ErrProductUnavailable):
		return http.StatusConflict, "A product in the cart is no longer available"
	case errors.Is(err, services.ErrCartChanged):
		return http.StatusConflict, "Cart changed while checking out, please review it"
	case errors.Is(err, services.ErrInsufficientStock):
		return http.StatusConflict, err.Error()
	case errors.Is(err, services.ErrOrderNotPending):
		return http.StatusConflict, "Order is not awaiting payment"
	case errors.Is(err, services.ErrOrderExpired):
		return http.StatusGone, "Payment window has expired, the items are back in your cart"
	case errors.Is(err, services.ErrInvalidCard):
		return http.StatusBadRequest, "Invalid card details"
	case errors.Is(err, services.ErrPaymentDeclined):
		return http.StatusPaymentRequired, "Payment declined"
	case services.IsNotFound(err):
		return http.StatusNotFound, "Order not found"
	default:
		return http.StatusInternalServerError, "Server error"
	}
}

// requestScope reads the customer and the :id order param.
func requestScope(c *gin.Context) (userID, orderID uuid.UUID, ok bool) {
	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return uuid.Nil, uuid.Nil, false
	}
	return userID, orderID, true
}
