package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a top-level product type (tents, backpacks, footwear).
type Category struct {
	ID            uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string        `json:"name" gorm:"not null"`
	Slug          string        `json:"slug" gorm:"not null;uniqueIndex"`
	Description   string        `json:"description" gorm:"type:text"`
	ImageURL      *string       `json:"image_url,omitempty"`
	SortOrder     int           `json:"sort_order" gorm:"default:0;index"`
	Active        bool          `json:"active"`
	CreatedAt     time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
	Subcategories []Subcategory `json:"subcategories,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Category) TableName() string {
	return "categories"
}

// Subcategory belongs to a category. Activity subcategories ("trekking",
// "alpinismo") describe a use rather than a product type and get their own
// storefront facet.
type Subcategory struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CategoryID  uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Name        string    `json:"name" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"not null;uniqueIndex"`
	Description string    `json:"description" gorm:"type:text"`
	IsActivity  bool      `json:"is_activity" gorm:"default:false;index"`
	SortOrder   int       `json:"sort_order" gorm:"default:0"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (s *Subcategory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Subcategory) TableName() string {
	return "subcategories"
}

type CategoryRequest struct {
	Name        string  `json:"name" binding:"required" example:"Tiendas de campaña"`
	Slug        string  `json:"slug" example:"tiendas"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url,omitempty"`
	SortOrder   int     `json:"sort_order" binding:"min=0"`
	Active      *bool   `json:"active,omitempty"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	SortOrder   *int    `json:"sort_order" binding:"omitempty,min=0"`
	Active      *bool   `json:"active"`
}

type SubcategoryRequest struct {
	CategoryID  uuid.UUID `json:"category_id" binding:"required"`
	Name        string    `json:"name" binding:"required" example:"Trekking"`
	Slug        string    `json:"slug" example:"trekking"`
	Description string    `json:"description"`
	IsActivity  bool      `json:"is_activity"`
	SortOrder   int       `json:"sort_order" binding:"min=0"`
	Active      *bool     `json:"active,omitempty"`
}

type UpdateSubcategoryRequest struct {
	CategoryID  *uuid.UUID `json:"category_id"`
	Name        *string    `json:"name"`
	Slug        *string    `json:"slug"`
	Description *string    `json:"description"`
	IsActivity  *bool      `json:"is_activity"`
	SortOrder   *int       `json:"sort_order" binding:"omitempty,min=0"`
	Active      *bool      `json:"active"`
}

// CategoryWithProducts is the admin list row: a category, its
// subcategories and how many products hang off each.
type CategoryWithProducts struct {
	Category
	Products int `json:"products"`
}
