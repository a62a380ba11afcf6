package category_controller

import (
	"net/http"

	catalog_cache "github.com/PalomoDev/alexika-es-sub001/cache"
	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GetCategories godoc
// @Summary Get storefront categories
// @Description Active categories with their active subcategories and the number of visible products in each
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.StorefrontCategory}
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	if tree, ok := catalog_cache.GetTree(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", tree))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var categories []models.Category
	err := config.DB.WithContext(ctx).
		Where("active = ?", true).
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Where("active = ?", true).Order("sort_order ASC, name ASC")
		}).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error
	if err != nil {
		config.Log.Error("[store.categories] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	engine, err := catalog_cache.Engine(ctx)
	if err != nil {
		config.Log.Error("[store.categories] catalog load failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}
	counts := make(map[string]int)
	for _, p := range engine.Products() {
		if p.Category != nil {
			counts[p.Category.ID]++
		}
	}

	tree := make([]models.StorefrontCategory, 0, len(categories))
	for _, cat := range categories {
		subs := make([]models.StorefrontSubcategory, 0, len(cat.Subcategories))
		for _, s := range cat.Subcategories {
			subs = append(subs, models.StorefrontSubcategory{
				ID:         s.ID.String(),
				Name:       s.Name,
				Slug:       s.Slug,
				IsActivity: s.IsActivity,
			})
		}
		tree = append(tree, models.StorefrontCategory{
			ID:            cat.ID.String(),
			Name:          cat.Name,
			Slug:          cat.Slug,
			Description:   cat.Description,
			ImageURL:      cat.ImageURL,
			ProductCount:  counts[cat.ID.String()],
			Subcategories: subs,
		})
	}

	catalog_cache.SetTree(tree)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", tree))
}
