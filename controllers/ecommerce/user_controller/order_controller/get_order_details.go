package order_controller

import (
	"fmt"
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/middleware"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetOrderDetails godoc
// @Summary Order detail
// @Description Includes seconds_remaining for pending orders so the storefront can resume the countdown
// @Tags User - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse{data=models.OrderDetail}
// @Failure 404 {object} models.ApiResponse
// @Router /user/orders/{id} [get]
func GetOrderDetails(c *gin.Context) {
	userID, orderID, ok := requestScope(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := services.FindUserOrder(ctx, userID, orderID)
	if err != nil {
		status, msg := orderErrorStatus(err)
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order retrieved successfully", services.OrderDetail(order)))
}

// DownloadInvoice godoc
// @Summary Download the invoice of a paid order
// @Tags User - Orders
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {file} file
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Order not paid"
// @Router /user/orders/{id}/invoice [get]
func DownloadInvoice(c *gin.Context) {
	userID, orderID, ok := requestScope(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := services.FindUserOrder(ctx, userID, orderID)
	if err != nil {
		status, msg := orderErrorStatus(err)
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}
	if order.PaidAt == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Order has not been paid"))
		return
	}

	email, _ := middleware.GetUserEmailFromContext(c)
	name := order.Address().FullName
	if name == "" {
		name = c.GetString("userName")
	}

	pdf, err := services.InvoicePDF(order, name, email)
	if err != nil {
		config.Log.Error("[orders.invoice] render failed", zap.String("order", order.OrderNumber), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate invoice"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="factura-%s.pdf"`, order.OrderNumber))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
