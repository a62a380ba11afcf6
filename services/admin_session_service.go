package services

import (
	"context"
	"errors"
	"time"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrSessionRevoked = errors.New("session revoked or expired")

// CreateAdminSession records a freshly issued admin token.
func CreateAdminSession(ctx context.Context, c *gin.Context, adminID uuid.UUID, token string, ttl time.Duration) (*models.AdminSession, error) {
	client := utils.DescribeClient(c)
	now := time.Now().UTC()
	session := &models.AdminSession{
		AdminID:        adminID,
		TokenHash:      HashToken(token),
		IPAddress:      client.IP,
		Device:         client.Device,
		Browser:        client.Browser,
		LastActivityAt: now,
		ExpiresAt:      now.Add(ttl),
		IsActive:       true,
	}
	if c != nil {
		session.UserAgent = c.GetHeader("User-Agent")
	}

	if err := config.DB.WithContext(ctx).Create(session).Error; err != nil {
		config.Log.Error("[session] failed to create session", zap.Error(err))
		return nil, err
	}
	return session, nil
}

// TouchAdminSession checks the token's session is live and bumps its
// last activity.
func TouchAdminSession(ctx context.Context, token string) error {
	now := time.Now().UTC()
	res := config.DB.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("token_hash = ? AND is_active = ? AND expires_at > ?", HashToken(token), true, now).
		Update("last_activity_at", now)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSessionRevoked
	}
	return nil
}

// DeactivateAdminSession revokes one token (logout).
func DeactivateAdminSession(ctx context.Context, token string) error {
	return config.DB.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("token_hash = ?", HashToken(token)).
		Update("is_active", false).Error
}

// CleanupExpiredAdminSessions removes sessions past expiry and inactive
// ones older than a week.
func CleanupExpiredAdminSessions(ctx context.Context) (int64, error) {
	now := time.Now().UTC()
	res := config.DB.WithContext(ctx).
		Where("expires_at < ? OR (is_active = ? AND last_activity_at < ?)", now, false, now.Add(-7*24*time.Hour)).
		Delete(&models.AdminSession{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
