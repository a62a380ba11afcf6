package cart_controller

import (
	"errors"
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/middleware"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func cartErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrProductUnavailable):
		return http.StatusNotFound, "Product not available"
	case errors.Is(err, services.ErrInsufficientStock):
		return http.StatusConflict, err.Error()
	case services.IsNotFound(err):
		return http.StatusNotFound, "Item not in cart"
	default:
		return http.StatusInternalServerError, "Server error"
	}
}

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
	}
	return userID, ok
}

func productParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return uuid.Nil, false
	}
	return id, true
}

// respondWithCart reloads the cart after a change and sends it back.
func respondWithCart(c *gin.Context, userID uuid.UUID, status int, msg string) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	view, err := services.GetCart(ctx, userID)
	if err != nil {
		config.Log.Error("[cart] reload failed", zap.String("user_id", userID.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	c.JSON(status, models.SuccessResponse(c, msg, view))
}

func fail(c *gin.Context, op string, err error) {
	status, msg := cartErrorStatus(err)
	if status == http.StatusInternalServerError {
		config.Log.Error("[cart] "+op+" failed", zap.Error(err))
	}
	c.JSON(status, models.ErrorResponse(c, msg))
}
