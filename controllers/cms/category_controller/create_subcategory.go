package category_controller

import (
	"net/http"

	catalog_cache "github.com/PalomoDev/alexika-es-sub001/cache"
	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateSubcategory godoc
// @Summary Create subcategory
// @Description Set is_activity for use-based groupings (trekking, alpinismo)
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subcategory body models.SubcategoryRequest true "Subcategory"
// @Success 201 {object} models.ApiResponse{data=models.Subcategory}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/subcategories [post]
func CreateSubcategory(c *gin.Context) {
	var req models.SubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var parent models.Category
	if err := config.DB.WithContext(ctx).Select("id").First(&parent, "id = ?", req.CategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category_id"))
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	sub := models.Subcategory{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		IsActivity:  req.IsActivity,
		SortOrder:   req.SortOrder,
		Active:      req.Active == nil || *req.Active,
	}
	if err := config.DB.WithContext(ctx).Create(&sub).Error; err != nil {
		status, msg := utils.DBErrorStatus(err, "Subcategory")
		config.Log.Error("[subcategory.create] failed", zap.String("slug", slug), zap.Error(err))
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	catalog_cache.Invalidate()
	c.Set("createdResourceID", sub.ID.String())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Subcategory created successfully", sub))
}
