package admin_auth_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/middleware"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Revokes the current session and clears the cookie
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func AdminLogout(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	if token := c.GetString("adminToken"); token != "" {
		if err := services.DeactivateAdminSession(ctx, token); err != nil {
			config.Log.Error("[admin.logout] failed to deactivate session", zap.Error(err))
		}
	}
	if adminID, email, ok := middleware.GetAdminFromContext(c); ok {
		services.LogActivity(ctx, services.LogActivityRequest{
			AdminID:      adminID,
			AdminEmail:   email,
			Action:       models.ActionName(models.ActionLogout, models.ResourceTypeAdmin),
			ResourceType: models.ResourceTypeAdmin,
			ResourceID:   adminID.String(),
			ResourceName: email,
			Context:      c,
		})
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminCookie, "", -1, "/", "", config.IsProduction(), true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out successfully", nil))
}
