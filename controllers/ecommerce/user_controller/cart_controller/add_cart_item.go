package cart_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/gin-gonic/gin"
)

// AddCartItem godoc
// @Summary Add a product to the cart
// @Description Merges with an existing line; the total quantity may not exceed stock
// @Tags User - Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.AddCartItemRequest true "Product and quantity"
// @Success 201 {object} models.ApiResponse{data=services.CartView}
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Not enough stock"
// @Router /user/cart/items [post]
func AddCartItem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.AddToCart(ctx, userID, req.ProductID, req.Quantity); err != nil {
		fail(c, "add", err)
		return
	}
	respondWithCart(c, userID, http.StatusCreated, "Item added to cart")
}
