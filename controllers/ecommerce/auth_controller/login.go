package auth_controller

import (
	"errors"
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Login godoc
// @Summary Sign in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 401 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse "Account suspended"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	user, err := services.AuthenticateUser(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	case errors.Is(err, services.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account is suspended"))
		return
	case err != nil:
		config.Log.Error("[auth.login] failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	token, err := issueSession(c, user)
	if err != nil {
		config.Log.Error("[auth.login] token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}
