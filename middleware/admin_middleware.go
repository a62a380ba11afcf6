package middleware

import (
	"errors"
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminCookie carries the admin JWT for the panel frontend
const AdminCookie = "admin_token"

// AdminAuthMiddleware validates the admin JWT and its backing session.
// Sets adminID (uuid.UUID), adminEmail, adminRole and adminToken.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get token from cookie first, then Authorization header
		token, problem := bearerOrCookie(c, AdminCookie)
		if token == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - "+problem))
			c.Abort()
			return
		}

		// Validate and parse JWT
		claims, err := services.VerifyAdminJWT(token)
		if err != nil {
			config.Log.Debug("[auth] invalid admin token", zap.Error(err))
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}
		adminID, err := uuid.Parse(claims.AdminID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		// A logged out or expired session revokes the token early
		if err := services.TouchAdminSession(ctx, token); err != nil {
			if errors.Is(err, services.ErrSessionRevoked) {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - session ended"))
			} else {
				config.Log.Error("[auth] session lookup failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
			}
			c.Abort()
			return
		}

		// Fetch role and status from database; both can change after login
		var admin models.Admin
		if err := config.DB.WithContext(ctx).
			Select("id", "role", "status").
			Where("id = ?", adminID).
			First(&admin).Error; err != nil {
			config.Log.Warn("[auth] admin not found for token", zap.String("admin_id", claims.AdminID))
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - admin not found"))
			c.Abort()
			return
		}
		if admin.Status != models.AdminStatusActive {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - account suspended"))
			c.Abort()
			return
		}

		// Set admin info in context
		c.Set("adminID", adminID)
		c.Set("adminEmail", claims.Email)
		c.Set("adminRole", admin.Role)
		c.Set("adminToken", token)

		c.Next()
	}
}

// RequireSuperAdminMiddleware checks if the admin is a super admin
func RequireSuperAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("adminRole") != models.RoleSuperAdmin {
			config.Log.Warn("[auth] non-super-admin attempted restricted action", zap.String("path", c.FullPath()))
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - super admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetAdminFromContext returns the authenticated admin's ID and email.
func GetAdminFromContext(c *gin.Context) (uuid.UUID, string, bool) {
	v, ok := c.Get("adminID")
	if !ok {
		return uuid.Nil, "", false
	}
	id, ok := v.(uuid.UUID)
	return id, c.GetString("adminEmail"), ok
}
