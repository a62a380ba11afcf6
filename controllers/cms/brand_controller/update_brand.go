package brand_controller

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

// UpdateBrand godoc
// @Summary Update brand
// @Description Partial update; omitted fields are left unchanged
// @Tags CMS - Brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Brand ID"
// @Param brand body models.UpdateBrandRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.Brand}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/brands/{id} [patch]
func UpdateBrand(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid brand ID"))
		return
	}

	var req models.UpdateBrandRequest
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
	if req.LogoURL != nil {
		updates["logo_url"] = *req.LogoURL
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var brand models.Brand
	if err := config.DB.WithContext(ctx).First(&brand, "id = ?", id).Error; err != nil {
		status, msg := utils.DBErrorStatus(err, "Brand")
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}
	if len(updates) > 0 {
		if err := config.DB.WithContext(ctx).Model(&brand).Updates(updates).Error; err != nil {
			status, msg := utils.DBErrorStatus(err, "Brand")
			config.Log.Error("[brand.update] failed", zap.String("id", id.String()), zap.Error(err))
			c.JSON(status, models.ErrorResponse(c, msg))
			return
		}
		catalog_cache.Invalidate()
	}

	if err := config.DB.WithContext(ctx).First(&brand, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Brand updated successfully", brand))
}
