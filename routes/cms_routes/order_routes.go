package cms_routes

import (
	"github.com/PalomoDev/alexika-es-sub001/controllers/cms/order_controller"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	order := rg.Group("/orders")
	order.GET("", order_controller.GetOrders)
	order.GET("/:id", order_controller.GetOrderDetailsByID)
	order.GET("/:id/invoice", order_controller.DownloadOrderInvoicePDF)
	order.PATCH("/:id/status", order_controller.UpdateOrderStatus)
}
