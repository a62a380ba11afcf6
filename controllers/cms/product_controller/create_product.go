package product_controller

import (
	"context"
	"net/http"
	"time"

	catalog_cache "github.com/PalomoDev/alexika-es-sub001/cache"
	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a product with its subcategories, features and specification values. Images are uploaded separately.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.ProductRequest true "Product"
// @Success 201 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	start := time.Now()

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	product, err := services.CreateProduct(ctx, req)
	if err != nil {
		status, msg := productErrorStatus(err)
		config.Log.Warn("[product.create] failed", zap.String("sku", req.SKU), zap.Error(err))
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	catalog_cache.Invalidate()
	config.Log.Debug("[product.create] done", zap.Duration("took", time.Since(start)))
	c.Set("createdResourceID", product.ID.String())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
