package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AdminJWTClaims represents the JWT claims for admin tokens
type AdminJWTClaims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies admin tokens.
type JWTService struct {
	secretKey string
	ttl       time.Duration
}

func NewJWTService(secretKey string, ttl time.Duration) (*JWTService, error) {
	if secretKey == "" {
		return nil, errors.New("JWT secret key cannot be empty")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTService{secretKey: secretKey, ttl: ttl}, nil
}

const devAdminSecret = "dev-admin-secret-change-in-production"

// GetJWTService builds the service from the current configuration.
// Production refuses to sign with the development fallback secret.
func GetJWTService() (*JWTService, error) {
	secret := config.App.AdminJWTSecret
	if secret == "" {
		if config.IsProduction() {
			return nil, errors.New("ADMIN_JWT_SECRET not set in environment")
		}
		secret = devAdminSecret
	}
	return NewJWTService(secret, config.App.JWTExpiry)
}

// TTL is how long issued tokens (and their sessions) live.
func (j *JWTService) TTL() time.Duration {
	return j.ttl
}

// GenerateAdminJWT creates a new JWT token for an admin
func (j *JWTService) GenerateAdminJWT(adminID, email, role string) (string, error) {
	if adminID == "" || email == "" {
		return "", errors.New("adminID and email cannot be empty")
	}

	now := time.Now()
	claims := AdminJWTClaims{
		AdminID: adminID,
		Email:   email,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "alexika-admin",
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// VerifyAdminJWT verifies and parses a JWT token
func (j *JWTService) VerifyAdminJWT(tokenString string) (*AdminJWTClaims, error) {
	claims := &AdminJWTClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.AdminID == "" || claims.Email == "" {
		return nil, errors.New("token missing required claims")
	}

	return claims, nil
}

func GenerateAdminJWT(adminID, email, role string) (string, error) {
	svc, err := GetJWTService()
	if err != nil {
		return "", err
	}
	return svc.GenerateAdminJWT(adminID, email, role)
}

func VerifyAdminJWT(tokenString string) (*AdminJWTClaims, error) {
	svc, err := GetJWTService()
	if err != nil {
		return nil, err
	}
	return svc.VerifyAdminJWT(tokenString)
}
