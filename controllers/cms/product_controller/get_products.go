package product_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type productListQuery struct {
	models.PageParams
	CategoryID string `form:"category_id"`
	BrandID    string `form:"brand_id"`
	Active     *bool  `form:"active"`
}

// GetProducts godoc
// @Summary Get paginated products
// @Description All products, including inactive ones, newest first
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param q query string false "Name or SKU contains"
// @Param category_id query string false "Category ID"
// @Param brand_id query string false "Brand ID"
// @Param active query bool false "Filter by active flag"
// @Success 200 {object} models.ApiResponse{data=[]models.Product}
// @Router /admin/products [get]
func GetProducts(c *gin.Context) {
	var q productListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid query", err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.Product{})
	query = q.Search(query, "name", "sku")
	if q.CategoryID != "" {
		query = query.Where("category_id = ?", q.CategoryID)
	}
	if q.BrandID != "" {
		query = query.Where("brand_id = ?", q.BrandID)
	}
	if q.Active != nil {
		query = query.Where("active = ?", *q.Active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		config.Log.Error("[product.list] count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count products"))
		return
	}

	products := make([]models.Product, 0)
	if err := query.
		Preload("Category").
		Preload("Brand").
		Preload("Images").
		Order("created_at DESC").
		Offset(q.Offset()).Limit(q.Limit).
		Find(&products).Error; err != nil {
		config.Log.Error("[product.list] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products retrieved successfully", products,
		models.NewPagination(q.Page, q.Limit, total)))
}
