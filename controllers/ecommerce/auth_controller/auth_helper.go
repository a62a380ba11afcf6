package auth_controller

import (
	"net/http"
	"net/url"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/middleware"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauth_state"

// issueSession signs a customer token and sets it as the auth cookie.
func issueSession(c *gin.Context, user *models.User) (string, error) {
	token, err := utils.GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		return "", err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CustomerCookie, token, int(config.App.JWTExpiry.Seconds()), "/", "", config.IsProduction(), true)
	return token, nil
}

func redirectToFrontendWithError(c *gin.Context, errorMsg string) {
	target := config.App.FrontendURL + "/auth/error?message=" + url.QueryEscape(errorMsg)
	c.Redirect(http.StatusTemporaryRedirect, target)
}
