package facets

// FilteredProducts applies sel to products using the default options.
func FilteredProducts(products []Product, sel Selection) []Product {
	return filterProducts(products, sel, DefaultOptions())
}

func filterProducts(products []Product, sel Selection, opts Options) []Product {
	if sel.IsEmpty() {
		return products
	}

	subs := toSet(sel.Subcategories)
	brands := toSet(sel.Brands)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if sel.Category != "" && (p.Category == nil || p.Category.Slug != sel.Category) {
			continue
		}
		if len(subs) > 0 && !hasAnySubcategory(p, subs) {
			continue
		}
		if len(brands) > 0 {
			if p.Brand == nil {
				continue
			}
			if _, ok := brands[p.Brand.Slug]; !ok {
				continue
			}
		}
		if sel.hasPrice() {
			if p.Price == nil || !inRange(*p.Price, sel.MinPrice, sel.MaxPrice) {
				continue
			}
		}
		if sel.hasWeight() {
			w, ok := opts.Weight(p)
			if !ok || !inRange(w, sel.MinWeight, sel.MaxWeight) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

func hasAnySubcategory(p Product, want map[string]struct{}) bool {
	for _, s := range p.Subcategories {
		if _, ok := want[s.Slug]; ok {
			return true
		}
	}
	return false
}

func inRange(v float64, min, max *float64) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
