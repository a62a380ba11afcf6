package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Brand is a manufacturer (MSR, Deuter, Black Diamond...).
type Brand struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"not null;uniqueIndex"`
	Description string    `json:"description" gorm:"type:text"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	SortOrder   int       `json:"sort_order" gorm:"default:0;index"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Brand) TableName() string {
	return "brands"
}

type BrandRequest struct {
	Name        string  `json:"name" binding:"required" example:"MSR"`
	Slug        string  `json:"slug" example:"msr"`
	Description string  `json:"description" example:"Mountain Safety Research"`
	LogoURL     *string `json:"logo_url,omitempty"`
	SortOrder   int     `json:"sort_order" binding:"min=0"`
	Active      *bool   `json:"active,omitempty"`
}

type UpdateBrandRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logo_url"`
	SortOrder   *int    `json:"sort_order" binding:"omitempty,min=0"`
	Active      *bool   `json:"active"`
}
