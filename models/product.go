package models

import (
	"time"

	"github.com/PalomoDev/alexika-es-sub001/facets"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID            uuid.UUID          `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string             `json:"name" gorm:"not null;index"`
	Slug          string             `json:"slug" gorm:"not null;uniqueIndex"`
	SKU           string             `json:"sku" gorm:"not null;uniqueIndex"`
	Description   string             `json:"description" gorm:"type:text"`
	Price         float64            `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Stock         int                `json:"stock" gorm:"not null;default:0;check:stock >= 0"`
	Active        bool               `json:"active" gorm:"index"`
	Featured      bool               `json:"featured" gorm:"default:false"`
	CategoryID    uuid.UUID          `json:"category_id" gorm:"type:uuid;not null;index"`
	Category      *Category          `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	BrandID       *uuid.UUID         `json:"brand_id,omitempty" gorm:"type:uuid;index"`
	Brand         *Brand             `json:"brand,omitempty" gorm:"foreignKey:BrandID;references:ID"`
	Subcategories []Subcategory      `json:"subcategories,omitempty" gorm:"many2many:product_subcategories;constraint:OnDelete:CASCADE"`
	Features      []Feature          `json:"features,omitempty" gorm:"many2many:product_features;constraint:OnDelete:CASCADE"`
	SpecValues    []ProductSpecValue `json:"spec_values,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images        []ProductImage     `json:"images,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time          `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time          `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// PrimaryImage returns the URL of the image flagged primary, falling back
// to the lowest position.
func (p *Product) PrimaryImage() string {
	best := -1
	for i, img := range p.Images {
		if img.IsPrimary {
			return img.URL
		}
		if best < 0 || img.Position < p.Images[best].Position {
			best = i
		}
	}
	if best < 0 {
		return ""
	}
	return p.Images[best].URL
}

// Facet maps a fully preloaded product onto the filter engine's view.
func (p *Product) Facet() facets.Product {
	out := facets.Product{
		ID:            p.ID.String(),
		Name:          p.Name,
		Slug:          p.Slug,
		Subcategories: make([]facets.SubRef, 0, len(p.Subcategories)),
		Specs:         make([]facets.SpecValue, 0, len(p.SpecValues)),
	}
	price := p.Price
	out.Price = &price

	if p.Category != nil {
		out.Category = &facets.Ref{
			ID:        p.Category.ID.String(),
			Name:      p.Category.Name,
			Slug:      p.Category.Slug,
			SortOrder: p.Category.SortOrder,
		}
	}
	if p.Brand != nil {
		out.Brand = &facets.Ref{
			ID:        p.Brand.ID.String(),
			Name:      p.Brand.Name,
			Slug:      p.Brand.Slug,
			SortOrder: p.Brand.SortOrder,
		}
	}
	for _, s := range p.Subcategories {
		out.Subcategories = append(out.Subcategories, facets.SubRef{
			Ref: facets.Ref{
				ID:        s.ID.String(),
				Name:      s.Name,
				Slug:      s.Slug,
				SortOrder: s.SortOrder,
			},
			IsActivity: s.IsActivity,
		})
	}
	for _, sv := range p.SpecValues {
		if sv.Specification == nil {
			continue
		}
		out.Specs = append(out.Specs, facets.SpecValue{
			Key:   sv.Specification.Key,
			Name:  sv.Specification.Name,
			Unit:  sv.Specification.Unit,
			Value: sv.Value,
		})
	}
	return out
}

// ProductSpecValue is the value a product carries for one specification.
type ProductSpecValue struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID       uuid.UUID      `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_product_spec"`
	SpecificationID uuid.UUID      `json:"specification_id" gorm:"type:uuid;not null;uniqueIndex:idx_product_spec"`
	Specification   *Specification `json:"specification,omitempty" gorm:"foreignKey:SpecificationID;references:ID;constraint:OnDelete:CASCADE"`
	Value           string         `json:"value" gorm:"not null"`
}

func (v *ProductSpecValue) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (ProductSpecValue) TableName() string {
	return "product_spec_values"
}

// ProductImage is an image hosted on Cloudinary.
type ProductImage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	URL       string    `json:"url" gorm:"not null"`
	PublicID  string    `json:"public_id"`
	Alt       string    `json:"alt"`
	Position  int       `json:"position" gorm:"default:0"`
	IsPrimary bool      `json:"is_primary" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (i *ProductImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (ProductImage) TableName() string {
	return "product_images"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type SpecValueInput struct {
	SpecificationID uuid.UUID `json:"specification_id" binding:"required"`
	Value           string    `json:"value" binding:"required" example:"2,5 kg"`
}

type ProductRequest struct {
	Name           string           `json:"name" binding:"required" example:"Tienda Hubba Hubba 2"`
	Slug           string           `json:"slug" example:"tienda-hubba-hubba-2"`
	SKU            string           `json:"sku" binding:"required" example:"MSR-HH2"`
	Description    string           `json:"description"`
	Price          float64          `json:"price" binding:"min=0" example:"489.95"`
	Stock          int              `json:"stock" binding:"min=0" example:"12"`
	Active         *bool            `json:"active,omitempty"`
	Featured       bool             `json:"featured"`
	CategoryID     uuid.UUID        `json:"category_id" binding:"required"`
	BrandID        *uuid.UUID       `json:"brand_id,omitempty"`
	SubcategoryIDs []uuid.UUID      `json:"subcategory_ids"`
	FeatureIDs     []uuid.UUID      `json:"feature_ids"`
	Specs          []SpecValueInput `json:"specs" binding:"dive"`
}

// UpdateProductRequest - all fields optional; slices replace the current
// associations when present.
type UpdateProductRequest struct {
	Name           *string           `json:"name"`
	Slug           *string           `json:"slug"`
	SKU            *string           `json:"sku"`
	Description    *string           `json:"description"`
	Price          *float64          `json:"price" binding:"omitempty,min=0"`
	Stock          *int              `json:"stock" binding:"omitempty,min=0"`
	Active         *bool             `json:"active"`
	Featured       *bool             `json:"featured"`
	CategoryID     *uuid.UUID        `json:"category_id"`
	BrandID        *uuid.UUID        `json:"brand_id"`
	SubcategoryIDs *[]uuid.UUID      `json:"subcategory_ids"`
	FeatureIDs     *[]uuid.UUID      `json:"feature_ids"`
	Specs          *[]SpecValueInput `json:"specs"`
}

// ═══════════════════════════════════════════════════════════
// Storefront views
// ═══════════════════════════════════════════════════════════

// ProductCard is a listing tile.
type ProductCard struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	Price     float64 `json:"price"`
	PriceText string  `json:"price_text"`
	Image     string  `json:"image"`
	Brand     string  `json:"brand,omitempty"`
	Category  string  `json:"category,omitempty"`
	Weight    string  `json:"weight,omitempty"`
	InStock   bool    `json:"in_stock"`
	Featured  bool    `json:"featured"`
}

type ProductSpecView struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// ProductDetail is the product page payload.
type ProductDetail struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Slug          string            `json:"slug"`
	SKU           string            `json:"sku"`
	Description   string            `json:"description"`
	Price         float64           `json:"price"`
	PriceText     string            `json:"price_text"`
	Stock         int               `json:"stock"`
	InStock       bool              `json:"in_stock"`
	Category      *Category         `json:"category,omitempty"`
	Brand         *Brand            `json:"brand,omitempty"`
	Subcategories []Subcategory     `json:"subcategories"`
	Features      []Feature         `json:"features"`
	Specs         []ProductSpecView `json:"specs"`
	Images        []ProductImage    `json:"images"`
}
