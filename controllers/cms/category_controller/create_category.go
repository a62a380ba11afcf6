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

// CreateCategory godoc
// @Summary Create category
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body models.CategoryRequest true "Category"
// @Success 201 {object} models.ApiResponse{data=models.Category}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /admin/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", err.Error()))
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	category := models.Category{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
		Active:      req.Active == nil || *req.Active,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&category).Error; err != nil {
		status, msg := utils.DBErrorStatus(err, "Category")
		config.Log.Error("[category.create] failed", zap.String("slug", slug), zap.Error(err))
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	catalog_cache.Invalidate()
	c.Set("createdResourceID", category.ID.String())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}
