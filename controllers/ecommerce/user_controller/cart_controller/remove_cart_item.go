package cart_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/gin-gonic/gin"
)

// RemoveCartItem godoc
// @Summary Remove a line from the cart
// @Tags User - Cart
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=services.CartView}
// @Failure 404 {object} models.ApiResponse
// @Router /user/cart/items/{productId} [delete]
func RemoveCartItem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	productID, ok := productParam(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.RemoveCartItem(ctx, userID, productID); err != nil {
		fail(c, "remove", err)
		return
	}
	respondWithCart(c, userID, http.StatusOK, "Item removed")
}

// ClearCart godoc
// @Summary Empty the cart
// @Tags User - Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=services.CartView}
// @Router /user/cart [delete]
func ClearCart(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.ClearCart(ctx, userID); err != nil {
		fail(c, "clear", err)
		return
	}
	respondWithCart(c, userID, http.StatusOK, "Cart cleared")
}
