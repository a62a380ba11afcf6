package feature_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DeleteFeature godoc
// @Summary Delete feature
// @Tags CMS - Features
// @Produce json
// @Security BearerAuth
// @Param id path string true "Feature ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/features/{id} [delete]
func DeleteFeature(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid feature ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var deleted int64
	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM product_features WHERE feature_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Feature{}, "id = ?", id)
		deleted = res.RowsAffected
		return res.Error
	})
	if err != nil {
		config.Log.Error("[feature.delete] failed", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Feature not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Feature deleted successfully", gin.H{"id": id}))
}
