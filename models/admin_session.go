package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminSession backs an admin JWT. Logging out deactivates it, which
// revokes the token before its own expiry.
type AdminSession struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID        uuid.UUID `json:"admin_id" gorm:"type:uuid;not null;index"`
	TokenHash      string    `json:"-" gorm:"not null;uniqueIndex"` // SHA-256 of the JWT, never the token itself
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent" gorm:"type:text"`
	Device         string    `json:"device"`  // Desktop, Mobile, Tablet
	Browser        string    `json:"browser"` // Chrome, Firefox, Safari...
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	LastActivityAt time.Time `json:"last_activity_at" gorm:"index"` // touched by the auth middleware
	ExpiresAt      time.Time `json:"expires_at" gorm:"index"`
	IsActive       bool      `json:"is_active" gorm:"index"` // false after logout or suspension
}

// BeforeCreate hook - auto-generate UUID v7
func (as *AdminSession) BeforeCreate(tx *gorm.DB) error {
	if as.ID == uuid.Nil {
		as.ID = uuid.Must(uuid.NewV7())
	}
	// Fall back to the default token lifetime
	if as.ExpiresAt.IsZero() {
		as.ExpiresAt = time.Now().Add(24 * time.Hour)
	}
	if as.LastActivityAt.IsZero() {
		as.LastActivityAt = time.Now()
	}
	return nil
}

// TableName specifies the table name
func (AdminSession) TableName() string {
	return "admin_sessions"
}

// IsExpired reports whether the session outlived its token
func (as *AdminSession) IsExpired() bool {
	return time.Now().After(as.ExpiresAt)
}
