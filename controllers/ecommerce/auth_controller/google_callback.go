// ════════════════════════════════════════════════════════════
// Google OAuth Callback Handler
// ════════════════════════════════════════════════════════════

package auth_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Checks the state token, exchanges the code, verifies the ID token, links or creates the customer, sets the auth cookie and redirects to the storefront.
// @Tags Auth - Google OAuth
// @Success 307 "Redirect to frontend"
// @Router /auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	savedState, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != savedState {
		config.Log.Warn("[auth.google] state mismatch")
		redirectToFrontendWithError(c, "Invalid state token")
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", config.IsProduction(), true)

	code := c.Query("code")
	if code == "" {
		redirectToFrontendWithError(c, "No authorization code")
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	token, err := config.GoogleOAuthConfig.Exchange(ctx, code)
	if err != nil {
		config.Log.Error("[auth.google] exchange failed", zap.Error(err))
		redirectToFrontendWithError(c, "Failed to exchange token")
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		redirectToFrontendWithError(c, "Missing ID token")
		return
	}
	idToken, err := config.OIDCVerifier.Verify(ctx, rawIDToken)
	if err != nil {
		config.Log.Warn("[auth.google] id token rejected", zap.Error(err))
		redirectToFrontendWithError(c, "Invalid ID token")
		return
	}

	var info models.GoogleUserInfo
	if err := idToken.Claims(&info); err != nil {
		redirectToFrontendWithError(c, "Failed to decode user info")
		return
	}
	if !info.EmailVerified {
		redirectToFrontendWithError(c, "Google email is not verified")
		return
	}

	user, err := services.UpsertGoogleUser(ctx, info)
	if err != nil {
		config.Log.Error("[auth.google] account link failed", zap.String("email", info.Email), zap.Error(err))
		redirectToFrontendWithError(c, "Could not sign in with Google")
		return
	}

	if _, err := issueSession(c, user); err != nil {
		config.Log.Error("[auth.google] token failed", zap.Error(err))
		redirectToFrontendWithError(c, "Failed to generate token")
		return
	}

	config.Log.Info("[auth.google] login", zap.String("user_id", user.ID.String()))
	c.Redirect(http.StatusTemporaryRedirect, config.App.FrontendURL+"/auth-popup")
}
