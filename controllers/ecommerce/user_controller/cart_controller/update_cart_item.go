package cart_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/gin-gonic/gin"
)

// UpdateCartItem godoc
// @Summary Change a line's quantity
// @Tags User - Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param body body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.ApiResponse{data=services.CartView}
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Not enough stock"
// @Router /user/cart/items/{productId} [patch]
func UpdateCartItem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	productID, ok := productParam(c)
	if !ok {
		return
	}
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.UpdateCartItem(ctx, userID, productID, req.Quantity); err != nil {
		fail(c, "update", err)
		return
	}
	respondWithCart(c, userID, http.StatusOK, "Cart updated")
}
