package models

import "github.com/PalomoDev/alexika-es-sub001/facets"

// FilterMetadata is the storefront sidebar payload: the facet summary for
// the current selection plus the selection itself in canonical form.
type FilterMetadata struct {
	Selection facets.Selection `json:"selection"`
	Query     string           `json:"query"`
	facets.Summary
	PriceText  RangeText `json:"price_text"`
	WeightText RangeText `json:"weight_text"`
}

// RangeText is a range formatted for display ("12,50 €", "1,2 kg").
type RangeText struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// StorefrontCategory is a category with its active subcategories and how
// many active products it holds.
type StorefrontCategory struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	Slug          string                  `json:"slug"`
	Description   string                  `json:"description"`
	ImageURL      *string                 `json:"image_url,omitempty"`
	ProductCount  int                     `json:"product_count"`
	Subcategories []StorefrontSubcategory `json:"subcategories"`
}

type StorefrontSubcategory struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	IsActivity bool   `json:"is_activity"`
}

// ProductListQuery holds the non-facet listing parameters.
type ProductListQuery struct {
	Q         string `form:"q"`
	SortBy    string `form:"sortBy" binding:"omitempty,oneof=price name newest"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
	Page      int    `form:"page,default=1" binding:"min=1"`
	Limit     int    `form:"limit,default=12" binding:"min=1,max=100"`
}
