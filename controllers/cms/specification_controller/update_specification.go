package specification_controller

import (
	"net/http"
	"strings"

	catalog_cache "github.com/PalomoDev/alexika-es-sub001/cache"
	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UpdateSpecification godoc
// @Summary Update specification
// @Tags CMS - Specifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Specification ID"
// @Param specification body models.UpdateSpecificationRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.Specification}
// @Failure 404 {object} models.ApiResponse
// @Router /admin/specifications/{id} [patch]
func UpdateSpecification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid specification ID"))
		return
	}

	var req models.UpdateSpecificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", err.Error()))
		return
	}

	updates := map[string]interface{}{}
	if req.Key != nil {
		updates["key"] = strings.ToLower(strings.TrimSpace(*req.Key))
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var spec models.Specification
	if err := config.DB.WithContext(ctx).First(&spec, "id = ?", id).Error; err != nil {
		status, msg := utils.DBErrorStatus(err, "Specification")
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}
	if len(updates) > 0 {
		if err := config.DB.WithContext(ctx).Model(&spec).Updates(updates).Error; err != nil {
			status, msg := utils.DBErrorStatus(err, "Specification")
			c.JSON(status, models.ErrorResponse(c, msg))
			return
		}
		catalog_cache.Invalidate()
	}
	_ = config.DB.WithContext(ctx).First(&spec, "id = ?", id).Error

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Specification updated successfully", spec))
}
