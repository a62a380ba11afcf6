package feature_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
)

// CreateFeature godoc
// @Summary Create feature
// @Tags CMS - Features
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param feature body models.FeatureRequest true "Feature"
// @Success 201 {object} models.ApiResponse{data=models.Feature}
// @Failure 409 {object} models.ApiResponse
// @Router /admin/features [post]
func CreateFeature(c *gin.Context) {
	var req models.FeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", err.Error()))
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	feature := models.Feature{Name: req.Name, Slug: slug, Description: req.Description, IconURL: req.IconURL}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&feature).Error; err != nil {
		status, msg := utils.DBErrorStatus(err, "Feature")
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	c.Set("createdResourceID", feature.ID.String())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Feature created successfully", feature))
}
