package product_controller

import (
	"net/http"

	catalog_cache "github.com/PalomoDev/alexika-es-sub001/cache"
	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DeleteProduct godoc
// @Summary Delete product
// @Description Removes the product, its images and any cart lines holding it
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := services.DeleteProduct(ctx, id)
	if err != nil {
		status, msg := productErrorStatus(err)
		config.Log.Warn("[product.delete] failed", zap.String("id", id.String()), zap.Error(err))
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	catalog_cache.Invalidate()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", gin.H{
		"id":   product.ID,
		"name": product.Name,
	}))
}
