package brand_controller

import (
	"net/http"

	catalog_cache "github.com/PalomoDev/alexika-es-sub001/cache"
	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateBrand godoc
// @Summary Create brand
// @Tags CMS - Brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param brand body models.BrandRequest true "Brand"
// @Success 201 {object} models.ApiResponse{data=models.Brand}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /admin/brands [post]
func CreateBrand(c *gin.Context) {
	var req models.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", err.Error()))
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	brand := models.Brand{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		SortOrder:   req.SortOrder,
		Active:      req.Active == nil || *req.Active,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&brand).Error; err != nil {
		status, msg := utils.DBErrorStatus(err, "Brand")
		config.Log.Error("[brand.create] failed", zap.String("slug", slug), zap.Error(err))
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	catalog_cache.Invalidate()
	c.Set("createdResourceID", brand.ID.String())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Brand created successfully", brand))
}
