package admin_auth_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/middleware"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
)

// GetAdminMe godoc
// @Summary Current admin
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.AdminResponse}
// @Failure 401 {object} models.ApiResponse
// @Router /admin/me [get]
func GetAdminMe(c *gin.Context) {
	adminID, _, ok := middleware.GetAdminFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	if err := config.DB.WithContext(ctx).First(&admin, "id = ?", adminID).Error; err != nil {
		status, msg := utils.DBErrorStatus(err, "Admin")
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin retrieved successfully", admin.ToResponse()))
}
