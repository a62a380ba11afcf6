package facets

import (
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Facet names one filter dimension.
type Facet int

const (
	FacetCategory Facet = iota
	FacetSubcategory
	FacetBrand
	FacetPrice
	FacetWeight
)

// Query parameter names. The URL is the only place filter state lives.
const (
	ParamCategory    = "category"
	ParamSubcategory = "subcategory"
	ParamBrand       = "brand"
	ParamMinPrice    = "minPrice"
	ParamMaxPrice    = "maxPrice"
	ParamMinWeight   = "minWeight"
	ParamMaxWeight   = "maxWeight"
)

// Selection is the set of active filter values.
type Selection struct {
	Category      string   `json:"category,omitempty"`
	Subcategories []string `json:"subcategories,omitempty"`
	Brands        []string `json:"brands,omitempty"`
	MinPrice      *float64 `json:"min_price,omitempty"`
	MaxPrice      *float64 `json:"max_price,omitempty"`
	MinWeight     *float64 `json:"min_weight,omitempty"`
	MaxWeight     *float64 `json:"max_weight,omitempty"`
}

// IsEmpty reports whether no filter is active.
func (s Selection) IsEmpty() bool {
	return s.Category == "" &&
		len(s.Subcategories) == 0 &&
		len(s.Brands) == 0 &&
		!s.hasPrice() &&
		!s.hasWeight()
}

func (s Selection) hasPrice() bool  { return s.MinPrice != nil || s.MaxPrice != nil }
func (s Selection) hasWeight() bool { return s.MinWeight != nil || s.MaxWeight != nil }

// Without returns a copy of s with the given facet cleared.
func (s Selection) Without(f Facet) Selection {
	switch f {
	case FacetCategory:
		s.Category = ""
	case FacetSubcategory:
		s.Subcategories = nil
	case FacetBrand:
		s.Brands = nil
	case FacetPrice:
		s.MinPrice, s.MaxPrice = nil, nil
	case FacetWeight:
		s.MinWeight, s.MaxWeight = nil, nil
	}
	return s
}

// ParseSelection reads a selection from URL query values. Multi-valued
// filters accept repeated keys and comma-separated lists. Numbers that do
// not parse are ignored.
func ParseSelection(q url.Values) Selection {
	return Selection{
		Category:      strings.TrimSpace(q.Get(ParamCategory)),
		Subcategories: splitValues(q[ParamSubcategory]),
		Brands:        splitValues(q[ParamBrand]),
		MinPrice:      parseNumber(q.Get(ParamMinPrice)),
		MaxPrice:      parseNumber(q.Get(ParamMaxPrice)),
		MinWeight:     parseNumber(q.Get(ParamMinWeight)),
		MaxWeight:     parseNumber(q.Get(ParamMaxWeight)),
	}
}

// Values is the inverse of ParseSelection.
func (s Selection) Values() url.Values {
	v := url.Values{}
	if s.Category != "" {
		v.Set(ParamCategory, s.Category)
	}
	for _, sub := range s.Subcategories {
		v.Add(ParamSubcategory, sub)
	}
	for _, b := range s.Brands {
		v.Add(ParamBrand, b)
	}
	setNumber(v, ParamMinPrice, s.MinPrice)
	setNumber(v, ParamMaxPrice, s.MaxPrice)
	setNumber(v, ParamMinWeight, s.MinWeight)
	setNumber(v, ParamMaxWeight, s.MaxWeight)
	return v
}

// Encode returns a canonical query string: multi-valued filters are sorted
// and deduplicated so equal selections encode identically.
func (s Selection) Encode() string {
	s.Subcategories = canonical(s.Subcategories)
	s.Brands = canonical(s.Brands)
	return s.Values().Encode()
}

func splitValues(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseNumber(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func setNumber(v url.Values, key string, f *float64) {
	if f != nil {
		v.Set(key, strconv.FormatFloat(*f, 'f', -1, 64))
	}
}

func canonical(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
