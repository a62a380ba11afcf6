package auth_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GoogleLogin godoc
// @Summary Redirect to Google OAuth
// @Description Starts the Google OAuth flow: stores a state token in a cookie and redirects to Google's consent page.
// @Tags Auth - Google OAuth
// @Success 307 "Temporary redirect to Google OAuth"
// @Router /auth/google/login [get]
func GoogleLogin(c *gin.Context) {
	state := uuid.NewString()

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/", "", config.IsProduction(), true)

	c.Redirect(http.StatusTemporaryRedirect, config.GoogleOAuthConfig.AuthCodeURL(state))
}
