package category_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GetCategories godoc
// @Summary Get paginated categories with subcategories
// @Description Categories with their subcategories and product counts
// @Tags CMS - Categories
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param q query string false "Name contains"
// @Success 200 {object} models.ApiResponse{data=[]models.CategoryWithProducts}
// @Router /admin/categories [get]
func GetCategories(c *gin.Context) {
	var page models.PageParams
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid pagination", err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var total int64
	if err := page.Search(config.DB.WithContext(ctx).Model(&models.Category{}), "name").Count(&total).Error; err != nil {
		config.Log.Error("[category.list] count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	var categories []models.Category
	if err := page.Search(config.DB.WithContext(ctx), "name").
		Order("sort_order ASC, name ASC").
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, name ASC")
		}).
		Offset(page.Offset()).Limit(page.Limit).
		Find(&categories).Error; err != nil {
		config.Log.Error("[category.list] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	type countRow struct {
		CategoryID string
		Count      int
	}
	var counts []countRow
	if err := config.DB.WithContext(ctx).
		Model(&models.Product{}).
		Select("category_id, COUNT(*) AS count").
		Group("category_id").
		Scan(&counts).Error; err != nil {
		config.Log.Error("[category.list] product count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count products"))
		return
	}
	byCategory := make(map[string]int, len(counts))
	for _, r := range counts {
		byCategory[r.CategoryID] = r.Count
	}

	out := make([]models.CategoryWithProducts, len(categories))
	for i, cat := range categories {
		out[i] = models.CategoryWithProducts{Category: cat, Products: byCategory[cat.ID.String()]}
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Categories retrieved successfully", out,
		models.NewPagination(page.Page, page.Limit, total)))
}
