package auth_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/middleware"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/gin-gonic/gin"
)

// Logout godoc
// @Summary Logout user
// @Description Clears the auth_token cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CustomerCookie, "", -1, "/", "", config.IsProduction(), true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
