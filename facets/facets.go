// Package facets derives the storefront's faceted filters from an in-memory
// product snapshot. Everything here is pure: the same products and selection
// always yield the same result.
package facets

// Ref points at a catalog entity a product belongs to (category, brand).
type Ref struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	SortOrder int    `json:"sort_order"`
}

// SubRef is a subcategory reference. Activity subcategories ("trekking",
// "climbing") form their own facet.
type SubRef struct {
	Ref
	IsActivity bool `json:"is_activity"`
}

// SpecValue is one specification value of a product, denormalised with the
// specification it belongs to.
type SpecValue struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Unit  string `json:"unit"`
	Value string `json:"value"`
}

// Product is the read-only view of a catalog product the engine works on.
type Product struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Slug          string      `json:"slug"`
	Category      *Ref        `json:"category,omitempty"`
	Subcategories []SubRef    `json:"subcategories"`
	Brand         *Ref        `json:"brand,omitempty"`
	Price         *float64    `json:"price,omitempty"`
	Specs         []SpecValue `json:"specs"`
}

// FacetEntry is one selectable value of a facet and how many products carry it.
type FacetEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	SortOrder int    `json:"sort_order"`
	Count     int    `json:"count"`
}

// Range is a numeric {min, max} pair. The zero Range means "no usable value".
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Summary is everything the filter sidebar needs for one selection.
type Summary struct {
	Categories []FacetEntry `json:"categories"`
	Activities []FacetEntry `json:"activities"`
	Brands     []FacetEntry `json:"brands"`
	Price      Range        `json:"price"`
	Weight     Range        `json:"weight"`
	Total      int          `json:"total"`
}
