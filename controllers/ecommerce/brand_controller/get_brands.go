package brand_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetBrands godoc
// @Summary Get storefront brands
// @Tags Storefront - Brands
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Brand}
// @Router /store/brands [get]
func GetBrands(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	brands := make([]models.Brand, 0)
	if err := config.DB.WithContext(ctx).
		Where("active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&brands).Error; err != nil {
		config.Log.Error("[store.brands] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch brands"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Brands fetched successfully", brands))
}
