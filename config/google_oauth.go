// ════════════════════════════════════════════════════════════
// Path: config/google_oauth.go
// Google OAuth Configuration
// ════════════════════════════════════════════════════════════

package config

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var (
	GoogleOAuthConfig *oauth2.Config
	OIDCVerifier      *oidc.IDTokenVerifier
)

// GoogleEnabled reports whether Google sign-in was configured.
func GoogleEnabled() bool {
	return GoogleOAuthConfig != nil
}

// InitGoogleOAuth sets up Google sign-in. Without client credentials the
// store runs with email/password accounts only.
func InitGoogleOAuth() {
	if App.GoogleClientID == "" || App.GoogleClientSecret == "" {
		Log.Warn("⚠️  GOOGLE_CLIENT_ID / GOOGLE_CLIENT_SECRET not set, Google sign-in disabled")
		return
	}

	GoogleOAuthConfig = &oauth2.Config{
		ClientID:     App.GoogleClientID,
		ClientSecret: App.GoogleClientSecret,
		RedirectURL:  App.GoogleRedirectURL,
		Scopes: []string{
			oidc.ScopeOpenID,
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	provider, err := oidc.NewProvider(context.Background(), "https://accounts.google.com")
	if err != nil {
		Log.Fatal("❌ Failed to create OIDC provider", zap.Error(err))
	}

	OIDCVerifier = provider.Verifier(&oidc.Config{
		ClientID: App.GoogleClientID,
	})

	Log.Info("✅ Google OAuth initialized successfully")
}
