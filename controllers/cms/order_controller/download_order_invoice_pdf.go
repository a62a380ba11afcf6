package order_controller

import (
	"fmt"
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DownloadOrderInvoicePDF godoc
// @Summary Download invoice PDF (CMS)
// @Tags Admin - Orders
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {file} file
// @Failure 404 {object} models.ApiResponse
// @Router /admin/orders/{id}/invoice [get]
func DownloadOrderInvoicePDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	if err := config.DB.WithContext(ctx).Preload("Items").Preload("User").First(&order, "id = ?", id).Error; err != nil {
		status, msg := utils.DBErrorStatus(err, "Order")
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	name, email := order.Address().FullName, ""
	if order.User != nil {
		email = order.User.Email
		if name == "" {
			name = order.User.Name
		}
	}

	pdf, err := services.InvoicePDF(&order, name, email)
	if err != nil {
		config.Log.Error("[admin.orders.invoice] render failed", zap.String("order", order.OrderNumber), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate invoice"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="factura-%s.pdf"`, order.OrderNumber))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
