package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feature is a product highlight shown as a badge ("Impermeable", "Ultraligero").
type Feature struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"not null;uniqueIndex"`
	Description string    `json:"description" gorm:"type:text"`
	IconURL     *string   `json:"icon_url,omitempty"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (f *Feature) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Feature) TableName() string {
	return "features"
}

type FeatureRequest struct {
	Name        string  `json:"name" binding:"required" example:"Impermeable"`
	Slug        string  `json:"slug" example:"impermeable"`
	Description string  `json:"description"`
	IconURL     *string `json:"icon_url,omitempty"`
}

type UpdateFeatureRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	IconURL     *string `json:"icon_url"`
}
