package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCart godoc
// @Summary Get the cart
// @Description Lines at current prices with subtotal, VAT share, shipping and total
// @Tags User - Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=services.CartView}
// @Router /user/cart [get]
func GetCart(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	respondWithCart(c, userID, http.StatusOK, "Cart retrieved successfully")
}
