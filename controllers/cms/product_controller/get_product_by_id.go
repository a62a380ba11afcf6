package product_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetProductByID godoc
// @Summary Get product with all associations
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 404 {object} models.ApiResponse
// @Router /admin/products/{id} [get]
func GetProductByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := services.LoadProduct(ctx, id)
	if err != nil {
		status, msg := productErrorStatus(err)
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product retrieved successfully", product))
}
