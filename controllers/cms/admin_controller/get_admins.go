package admin_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetAdmins godoc
// @Summary List admins
// @Tags Admin - Management
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.AdminResponse}
// @Failure 403 {object} models.ApiResponse
// @Router /admin/admins [get]
func GetAdmins(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admins []models.Admin
	if err := config.DB.WithContext(ctx).Order("joined_at ASC").Find(&admins).Error; err != nil {
		config.Log.Error("[admin.list] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	out := make([]models.AdminResponse, len(admins))
	for i := range admins {
		out[i] = admins[i].ToResponse()
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admins retrieved successfully", out))
}
