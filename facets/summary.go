package facets

import "sort"

// FacetCategories counts products per category.
func FacetCategories(products []Product) []FacetEntry {
	g := newGrouper()
	for _, p := range products {
		if p.Category != nil {
			g.add(*p.Category)
		}
	}
	return g.entries()
}

// FacetActivities counts products per activity subcategory. A product is
// counted once per activity even if it lists the subcategory twice.
func FacetActivities(products []Product) []FacetEntry {
	g := newGrouper()
	for _, p := range products {
		seen := make(map[string]struct{}, len(p.Subcategories))
		for _, s := range p.Subcategories {
			if !s.IsActivity {
				continue
			}
			if _, dup := seen[s.ID]; dup {
				continue
			}
			seen[s.ID] = struct{}{}
			g.add(s.Ref)
		}
	}
	return g.entries()
}

// FacetBrands counts products per brand.
func FacetBrands(products []Product) []FacetEntry {
	g := newGrouper()
	for _, p := range products {
		if p.Brand != nil {
			g.add(*p.Brand)
		}
	}
	return g.entries()
}

// PriceRange returns the min and max price over products that have one.
func PriceRange(products []Product) Range {
	return numericRange(products, func(p Product) (float64, bool) {
		if p.Price == nil {
			return 0, false
		}
		return *p.Price, true
	})
}

// WeightRange returns the min and max parsable weight using the default options.
func WeightRange(products []Product) Range {
	return weightRange(products, DefaultOptions())
}

func weightRange(products []Product, opts Options) Range {
	return numericRange(products, opts.Weight)
}

// Summarize computes every facet for sel. Each facet is derived from the
// products matching all active filters except its own, so a facet never
// collapses to the user's current choice.
func Summarize(products []Product, sel Selection) Summary {
	return summarize(products, sel, DefaultOptions())
}

func summarize(products []Product, sel Selection, opts Options) Summary {
	return Summary{
		Categories: FacetCategories(filterProducts(products, sel.Without(FacetCategory), opts)),
		Activities: FacetActivities(filterProducts(products, sel.Without(FacetSubcategory), opts)),
		Brands:     FacetBrands(filterProducts(products, sel.Without(FacetBrand), opts)),
		Price:      PriceRange(filterProducts(products, sel.Without(FacetPrice), opts)),
		Weight:     weightRange(filterProducts(products, sel.Without(FacetWeight), opts), opts),
		Total:      len(filterProducts(products, sel, opts)),
	}
}

func numericRange(products []Product, value func(Product) (float64, bool)) Range {
	var r Range
	found := false
	for _, p := range products {
		v, ok := value(p)
		if !ok {
			continue
		}
		if !found {
			r = Range{Min: v, Max: v}
			found = true
			continue
		}
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
	}
	return r
}

// grouper counts refs by ID, remembering first-seen order.
type grouper struct {
	index map[string]int
	list  []FacetEntry
}

func newGrouper() *grouper {
	return &grouper{index: make(map[string]int)}
}

func (g *grouper) add(r Ref) {
	if i, ok := g.index[r.ID]; ok {
		g.list[i].Count++
		return
	}
	g.index[r.ID] = len(g.list)
	g.list = append(g.list, FacetEntry{
		ID:        r.ID,
		Name:      r.Name,
		Slug:      r.Slug,
		SortOrder: r.SortOrder,
		Count:     1,
	})
}

func (g *grouper) entries() []FacetEntry {
	out := g.list
	if out == nil {
		out = []FacetEntry{}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortOrder < out[j].SortOrder
	})
	return out
}
