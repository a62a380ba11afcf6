package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"gorm.io/gorm"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterUser creates an email/password customer account.
func RegisterUser(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if !ValidatePassword(req.Password) {
		return nil, fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	email := normalizeEmail(req.Email)

	var count int64
	if err := config.DB.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: &hash,
		Provider:     models.ProviderLocal,
		Phone:        req.Phone,
	}
	if err := config.DB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// AuthenticateUser checks customer credentials. Google-only accounts have
// no password and always fail here.
func AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := config.DB.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if user.PasswordHash == nil || !VerifyPassword(*user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	if user.Status != models.UserStatusActive {
		return nil, ErrAccountDisabled
	}
	return &user, nil
}

// UpsertGoogleUser finds the account for a verified Google identity,
// linking it to an existing email account or creating a new one.
func UpsertGoogleUser(ctx context.Context, info models.GoogleUserInfo) (*models.User, error) {
	if info.Sub == "" || info.Email == "" {
		return nil, errors.New("google identity missing subject or email")
	}
	email := normalizeEmail(info.Email)
	db := config.DB.WithContext(ctx)

	var user models.User
	err := db.Where("google_id = ?", info.Sub).First(&user).Error
	if err == nil {
		if user.Status != models.UserStatusActive {
			return nil, ErrAccountDisabled
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sub := info.Sub
	var avatar *string
	if info.Picture != "" {
		avatar = &info.Picture
	}

	err = db.Where("email = ?", email).First(&user).Error
	switch {
	case err == nil:
		if user.Status != models.UserStatusActive {
			return nil, ErrAccountDisabled
		}
		updates := map[string]interface{}{"google_id": sub}
		if user.Avatar == nil && avatar != nil {
			updates["avatar"] = *avatar
		}
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			Email:    email,
			Name:     info.Name,
			GoogleID: &sub,
			Provider: models.ProviderGoogle,
			Avatar:   avatar,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	default:
		return nil, err
	}
}

// AuthenticateAdmin checks admin credentials and stamps last_login_at.
func AuthenticateAdmin(ctx context.Context, email, password string) (*models.Admin, error) {
	var admin models.Admin
	err := config.DB.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !VerifyPassword(admin.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	if admin.Status != models.AdminStatusActive {
		return nil, ErrAccountDisabled
	}

	now := time.Now().UTC()
	if err := config.DB.WithContext(ctx).Model(&admin).Update("last_login_at", now).Error; err != nil {
		return nil, err
	}
	admin.LastLoginAt = &now
	return &admin, nil
}
