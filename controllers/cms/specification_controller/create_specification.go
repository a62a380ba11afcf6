package specification_controller

import (
	"net/http"
	"strings"

	catalog_cache "github.com/PalomoDev/alexika-es-sub001/cache"
	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
)

// CreateSpecification godoc
// @Summary Create specification
// @Description The key "weight" (configurable) feeds the storefront weight filter
// @Tags CMS - Specifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param specification body models.SpecificationRequest true "Specification"
// @Success 201 {object} models.ApiResponse{data=models.Specification}
// @Failure 409 {object} models.ApiResponse
// @Router /admin/specifications [post]
func CreateSpecification(c *gin.Context) {
	var req models.SpecificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", err.Error()))
		return
	}

	spec := models.Specification{
		Key:       strings.ToLower(strings.TrimSpace(req.Key)),
		Name:      req.Name,
		Unit:      req.Unit,
		SortOrder: req.SortOrder,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&spec).Error; err != nil {
		status, msg := utils.DBErrorStatus(err, "Specification")
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	catalog_cache.Invalidate()
	c.Set("createdResourceID", spec.ID.String())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Specification created successfully", spec))
}
