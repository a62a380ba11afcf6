package ecommerce_routes

import (
	"github.com/PalomoDev/alexika-es-sub001/controllers/ecommerce/user_controller/cart_controller"
	"github.com/PalomoDev/alexika-es-sub001/controllers/ecommerce/user_controller/order_controller"
	"github.com/PalomoDev/alexika-es-sub001/controllers/ecommerce/user_controller/profile_controller"
	"github.com/PalomoDev/alexika-es-sub001/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up the signed-in customer's routes
func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware()) // All routes require auth
	{
		user.PATCH("/profile", profile_controller.UpdateProfile)

		// Cart
		user.GET("/cart", cart_controller.GetCart)
		user.DELETE("/cart", cart_controller.ClearCart)
		user.POST("/cart/items", cart_controller.AddCartItem)
		user.PATCH("/cart/items/:productId", cart_controller.UpdateCartItem)
		user.DELETE("/cart/items/:productId", cart_controller.RemoveCartItem)

		// Orders
		user.GET("/orders", order_controller.GetOrders)
		user.POST("/orders", order_controller.CreateOrder)
		user.GET("/orders/:id", order_controller.GetOrderDetails)
		user.GET("/orders/:id/invoice", order_controller.DownloadInvoice)
		user.POST("/orders/:id/pay", order_controller.PayOrder)
		user.POST("/orders/:id/expire", order_controller.ExpireOrder)
	}
}
