package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Specification is a measurable attribute products carry values for.
// Key is the stable machine name ("weight"), Name the label shown ("Peso").
type Specification struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Key       string    `json:"key" gorm:"not null;uniqueIndex"`
	Name      string    `json:"name" gorm:"not null"`
	Unit      string    `json:"unit"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (s *Specification) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Specification) TableName() string {
	return "specifications"
}

type SpecificationRequest struct {
	Key       string `json:"key" binding:"required" example:"weight"`
	Name      string `json:"name" binding:"required" example:"Peso"`
	Unit      string `json:"unit" example:"kg"`
	SortOrder int    `json:"sort_order" binding:"min=0"`
}

type UpdateSpecificationRequest struct {
	Key       *string `json:"key"`
	Name      *string `json:"name"`
	Unit      *string `json:"unit"`
	SortOrder *int    `json:"sort_order" binding:"omitempty,min=0"`
}
