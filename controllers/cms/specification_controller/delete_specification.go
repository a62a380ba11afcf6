package specification_controller

import (
	"net/http"

	catalog_cache "github.com/PalomoDev/alexika-es-sub001/cache"
	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DeleteSpecification godoc
// @Summary Delete specification
// @Description Also removes every product value recorded for it
// @Tags CMS - Specifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Specification ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/specifications/{id} [delete]
func DeleteSpecification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid specification ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var deleted int64
	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("specification_id = ?", id).Delete(&models.ProductSpecValue{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Specification{}, "id = ?", id)
		deleted = res.RowsAffected
		return res.Error
	})
	if err != nil {
		config.Log.Error("[specification.delete] failed", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Specification not found"))
		return
	}

	catalog_cache.Invalidate()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Specification deleted successfully", gin.H{"id": id}))
}
