package admin_auth_controller

import (
	"errors"
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/middleware"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminLogin godoc
// @Summary Login as admin
// @Description Authenticate admin with email and password. Returns JWT token and creates session
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.AdminLoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse{data=models.AdminLoginResponse}
// @Failure 400 {object} models.ApiResponse "Invalid credentials"
// @Failure 403 {object} models.ApiResponse "Account suspended"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/login [post]
func AdminLogin(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	admin, err := services.AuthenticateAdmin(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		config.Log.Info("[admin.login] rejected", zap.String("email", req.Email))
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		return
	case errors.Is(err, services.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account is suspended"))
		return
	case err != nil:
		config.Log.Error("[admin.login] lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	jwtService, err := services.GetJWTService()
	if err != nil {
		config.Log.Error("[admin.login] jwt not configured", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	token, err := jwtService.GenerateAdminJWT(admin.ID.String(), admin.Email, admin.Role)
	if err != nil {
		config.Log.Error("[admin.login] failed to sign token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if _, err := services.CreateAdminSession(ctx, c, admin.ID, token, jwtService.TTL()); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminCookie, token, int(jwtService.TTL().Seconds()), "/", "", config.IsProduction(), true)

	services.LogActivity(ctx, services.LogActivityRequest{
		AdminID:      admin.ID,
		AdminEmail:   admin.Email,
		Action:       models.ActionName(models.ActionLogin, models.ResourceTypeAdmin),
		ResourceType: models.ResourceTypeAdmin,
		ResourceID:   admin.ID.String(),
		ResourceName: admin.Email,
		Context:      c,
	})
	config.Log.Info("[admin.login] success", zap.String("email", admin.Email))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.AdminLoginResponse{
		Admin: admin.ToResponse(),
		Token: token,
	}))
}
