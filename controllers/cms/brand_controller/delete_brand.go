package brand_controller

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

// DeleteBrand godoc
// @Summary Delete brand
// @Description Products of the brand are kept and become unbranded
// @Tags CMS - Brands
// @Produce json
// @Security BearerAuth
// @Param id path string true "Brand ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/brands/{id} [delete]
func DeleteBrand(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid brand ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var deleted int64
	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Product{}).Where("brand_id = ?", id).Update("brand_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Brand{}, "id = ?", id)
		deleted = res.RowsAffected
		return res.Error
	})
	if err != nil {
		config.Log.Error("[brand.delete] failed", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Brand not found"))
		return
	}

	catalog_cache.Invalidate()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Brand deleted successfully", gin.H{"id": id}))
}
