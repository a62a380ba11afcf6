package feature_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UpdateFeature godoc
// @Summary Update feature
// @Tags CMS - Features
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Feature ID"
// @Param feature body models.UpdateFeatureRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.Feature}
// @Failure 404 {object} models.ApiResponse
// @Router /admin/features/{id} [patch]
func UpdateFeature(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid feature ID"))
		return
	}

	var req models.UpdateFeatureRequest
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
	if req.IconURL != nil {
		updates["icon_url"] = *req.IconURL
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var feature models.Feature
	if err := config.DB.WithContext(ctx).First(&feature, "id = ?", id).Error; err != nil {
		status, msg := utils.DBErrorStatus(err, "Feature")
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}
	if len(updates) > 0 {
		if err := config.DB.WithContext(ctx).Model(&feature).Updates(updates).Error; err != nil {
			status, msg := utils.DBErrorStatus(err, "Feature")
			c.JSON(status, models.ErrorResponse(c, msg))
			return
		}
	}
	_ = config.DB.WithContext(ctx).First(&feature, "id = ?", id).Error

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Feature updated successfully", feature))
}
