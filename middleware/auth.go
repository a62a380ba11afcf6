package middleware

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CustomerCookie carries the storefront JWT
const CustomerCookie = "auth_token"

// bearerOrCookie reads the token from the named cookie, falling back to
// the Authorization header.
func bearerOrCookie(c *gin.Context, cookie string) (string, string) {
	if token, err := c.Cookie(cookie); err == nil && token != "" {
		return token, ""
	}
	token, err := utils.ExtractTokenFromHeader(c.GetHeader("Authorization"))
	if err != nil {
		return "", err.Error()
	}
	return token, ""
}

// AuthMiddleware validates the customer JWT from cookie or Authorization header
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, problem := bearerOrCookie(c, CustomerCookie)
		if token == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - "+problem))
			c.Abort()
			return
		}

		// Validate and parse JWT
		claims, err := utils.ValidateJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			c.Abort()
			return
		}
		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid token subject"))
			c.Abort()
			return
		}

		// Set user info in context
		c.Set("userID", userID)
		c.Set("userEmail", claims.Email)
		c.Set("userName", claims.Name)

		c.Next()
	}
}

// GetUserIDFromContext returns the authenticated customer.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetUserEmailFromContext returns the email claim of the customer token.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get("userEmail")
	if !exists {
		return "", false
	}
	s, ok := email.(string)
	return s, ok
}
