package category_controller

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

// DeleteSubcategory godoc
// @Summary Delete subcategory
// @Description Products keep existing; they are just detached from it
// @Tags CMS - Categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subcategory ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/subcategories/{id} [delete]
func DeleteSubcategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid subcategory ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var deleted int64
	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM product_subcategories WHERE subcategory_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Subcategory{}, "id = ?", id)
		deleted = res.RowsAffected
		return res.Error
	})
	if err != nil {
		config.Log.Error("[subcategory.delete] failed", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Subcategory not found"))
		return
	}

	catalog_cache.Invalidate()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Subcategory deleted successfully", gin.H{"id": id}))
}
