package category_controller

import (
	"net/http"

	catalog_cache "github.com/PalomoDev/alexika-es-sub001/cache"
	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UpdateCategory godoc
// @Summary Update category
// @Description Deactivating a category hides all its products from the storefront
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param category body models.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.Category}
// @Failure 404 {object} models.ApiResponse
// @Router /admin/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", err.Error()))
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Slug != nil {
		updates["slug"] = utils.Slugify(*req.Slug)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var category models.Category
	if err := config.DB.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		status, msg := utils.DBErrorStatus(err, "Category")
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}
	if len(updates) > 0 {
		if err := config.DB.WithContext(ctx).Model(&category).Updates(updates).Error; err != nil {
			status, msg := utils.DBErrorStatus(err, "Category")
			config.Log.Error("[category.update] failed", zap.String("id", id.String()), zap.Error(err))
			c.JSON(status, models.ErrorResponse(c, msg))
			return
		}
		catalog_cache.Invalidate()
	}

	if err := config.DB.WithContext(ctx).Preload("Subcategories").First(&category, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category updated successfully", category))
}
