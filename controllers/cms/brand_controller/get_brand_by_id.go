package brand_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetBrandByID godoc
// @Summary Get brand
// @Tags CMS - Brands
// @Produce json
// @Security BearerAuth
// @Param id path string true "Brand ID"
// @Success 200 {object} models.ApiResponse{data=models.Brand}
// @Failure 404 {object} models.ApiResponse
// @Router /admin/brands/{id} [get]
func GetBrandByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid brand ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var brand models.Brand
	if err := config.DB.WithContext(ctx).First(&brand, "id = ?", id).Error; err != nil {
		status, msg := utils.DBErrorStatus(err, "Brand")
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Brand retrieved successfully", brand))
}
