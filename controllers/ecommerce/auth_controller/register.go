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

// Register godoc
// @Summary Create a customer account
// @Description Registers with email and password and signs the customer in
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body models.RegisterRequest true "Account details"
// @Success 201 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Email already registered"
// @Router /auth/register [post]
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	user, err := services.RegisterUser(ctx, req)
	if errors.Is(err, services.ErrEmailTaken) {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Email already registered"))
		return
	}
	if err != nil {
		config.Log.Error("[auth.register] failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	token, err := issueSession(c, user)
	if err != nil {
		config.Log.Error("[auth.register] token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	config.Log.Info("[auth.register] account created", zap.String("user_id", user.ID.String()))
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}
