package brand_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetBrands godoc
// @Summary List brands
// @Description All brands, active or not, ordered for the admin table
// @Tags CMS - Brands
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param q query string false "Name contains"
// @Success 200 {object} models.ApiResponse{data=[]models.Brand,meta=models.Pagination}
// @Router /admin/brands [get]
func GetBrands(c *gin.Context) {
	var page models.PageParams
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid pagination", err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := page.Search(config.DB.WithContext(ctx).Model(&models.Brand{}), "name", "slug")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		config.Log.Error("[brand.list] count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	items := make([]models.Brand, 0)
	if err := query.Order("sort_order ASC, name ASC").Offset(page.Offset()).Limit(page.Limit).Find(&items).Error; err != nil {
		config.Log.Error("[brand.list] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Brands retrieved successfully", items,
		models.NewPagination(page.Page, page.Limit, total)))
}
