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

// UpdateSubcategory godoc
// @Summary Update subcategory
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subcategory ID"
// @Param subcategory body models.UpdateSubcategoryRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.Subcategory}
// @Failure 404 {object} models.ApiResponse
// @Router /admin/subcategories/{id} [patch]
func UpdateSubcategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid subcategory ID"))
		return
	}

	var req models.UpdateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	updates := map[string]interface{}{}
	if req.CategoryID != nil {
		var parent models.Category
		if err := config.DB.WithContext(ctx).Select("id").First(&parent, "id = ?", *req.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category_id"))
			return
		}
		updates["category_id"] = *req.CategoryID
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Slug != nil {
		updates["slug"] = utils.Slugify(*req.Slug)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.IsActivity != nil {
		updates["is_activity"] = *req.IsActivity
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	var sub models.Subcategory
	if err := config.DB.WithContext(ctx).First(&sub, "id = ?", id).Error; err != nil {
		status, msg := utils.DBErrorStatus(err, "Subcategory")
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}
	if len(updates) > 0 {
		if err := config.DB.WithContext(ctx).Model(&sub).Updates(updates).Error; err != nil {
			status, msg := utils.DBErrorStatus(err, "Subcategory")
			config.Log.Error("[subcategory.update] failed", zap.String("id", id.String()), zap.Error(err))
			c.JSON(status, models.ErrorResponse(c, msg))
			return
		}
		catalog_cache.Invalidate()
	}

	if err := config.DB.WithContext(ctx).First(&sub, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Subcategory updated successfully", sub))
}
