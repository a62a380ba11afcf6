package facets

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

var (
	tents = &Ref{ID: "c1", Name: "Tiendas", Slug: "tents", SortOrder: 2}
	bags  = &Ref{ID: "c2", Name: "Mochilas", Slug: "bags", SortOrder: 1}

	msr    = &Ref{ID: "b1", Name: "MSR", Slug: "msr", SortOrder: 1}
	deuter = &Ref{ID: "b2", Name: "Deuter", Slug: "deuter", SortOrder: 1}

	trekking = SubRef{Ref: Ref{ID: "s1", Name: "Trekking", Slug: "trekking", SortOrder: 1}, IsActivity: true}
	alpine   = SubRef{Ref: Ref{ID: "s2", Name: "Alpinismo", Slug: "alpine", SortOrder: 0}, IsActivity: true}
	domes    = SubRef{Ref: Ref{ID: "s3", Name: "Iglú", Slug: "domes", SortOrder: 0}}
)

func weightSpec(v string) SpecValue {
	return SpecValue{Key: DefaultWeightKey, Name: "Peso", Unit: "kg", Value: v}
}

func catalog() []Product {
	return []Product{
		{ID: "p1", Slug: "hubba", Category: tents, Brand: msr, Price: ptr(450),
			Subcategories: []SubRef{domes, trekking}, Specs: []SpecValue{weightSpec("1,54 kg")}},
		{ID: "p2", Slug: "access", Category: tents, Brand: msr, Price: ptr(620),
			Subcategories: []SubRef{domes, alpine}, Specs: []SpecValue{weightSpec("1,86 kg")}},
		{ID: "p3", Slug: "futura", Category: bags, Brand: deuter, Price: ptr(160),
			Subcategories: []SubRef{trekking}, Specs: []SpecValue{weightSpec("1.6 kg")}},
		{ID: "p4", Slug: "guide", Category: bags, Brand: deuter, Price: ptr(180),
			Subcategories: []SubRef{alpine, trekking}},
		{ID: "p5", Slug: "loose", Price: nil, Specs: []SpecValue{weightSpec("n/a")}},
	}
}

func ids(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilteredProductsEmptySelectionIsIdentity(t *testing.T) {
	products := catalog()
	got := FilteredProducts(products, Selection{})
	require.Len(t, got, len(products))
	assert.Same(t, &products[0], &got[0])
}

func TestFilteredProductsIsSubsetAndIdempotent(t *testing.T) {
	products := catalog()
	selections := []Selection{
		{Category: "tents"},
		{Subcategories: []string{"trekking"}},
		{Brands: []string{"msr", "deuter"}, MinPrice: ptr(170)},
		{MaxWeight: ptr(1.7)},
		{Category: "bags", Subcategories: []string{"alpine"}, MaxPrice: ptr(500)},
	}
	all := map[string]bool{}
	for _, p := range products {
		all[p.ID] = true
	}
	for _, sel := range selections {
		once := FilteredProducts(products, sel)
		for _, p := range once {
			assert.True(t, all[p.ID], "%s not in input", p.ID)
		}
		twice := FilteredProducts(once, sel)
		assert.Equal(t, ids(once), ids(twice))
	}
}

func TestFilteredProductsCombinesFacets(t *testing.T) {
	products := catalog()

	assert.Equal(t, []string{"p1", "p2"}, ids(FilteredProducts(products, Selection{Category: "tents"})))
	assert.Equal(t, []string{"p1", "p3", "p4"}, ids(FilteredProducts(products, Selection{Subcategories: []string{"trekking"}})))
	assert.Equal(t, []string{"p1", "p2", "p4"}, ids(FilteredProducts(products, Selection{Subcategories: []string{"domes", "alpine"}})))
	assert.Equal(t, []string{"p3", "p4"}, ids(FilteredProducts(products, Selection{Brands: []string{"deuter"}})))
	assert.Equal(t, []string{"p4"}, ids(FilteredProducts(products, Selection{Category: "bags", Subcategories: []string{"alpine"}})))
}

func TestFilteredProductsPriceBoundsAreInclusive(t *testing.T) {
	got := FilteredProducts(catalog(), Selection{MinPrice: ptr(160), MaxPrice: ptr(450)})
	assert.Equal(t, []string{"p1", "p3", "p4"}, ids(got))
}

func TestFilteredProductsExcludesMissingValuesOnceFilterActive(t *testing.T) {
	products := catalog()

	priced := FilteredProducts(products, Selection{MinPrice: ptr(0)})
	assert.NotContains(t, ids(priced), "p5")

	weighed := FilteredProducts(products, Selection{MinWeight: ptr(0)})
	assert.Equal(t, []string{"p1", "p2", "p3"}, ids(weighed))
}

func TestStaleSubcategoryYieldsNothing(t *testing.T) {
	got := FilteredProducts(catalog(), Selection{Category: "bags", Subcategories: []string{"domes"}})
	assert.Empty(t, got)
}

func TestParseWeight(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"2,5 kg", 2.5, true},
		{"1.6 kg", 1.6, true},
		{"850g", 850, true},
		{"n/a", 0, false},
		{"", 0, false},
		{"0 kg", 0, false},
		{"1.2.3", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseWeight(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.InDelta(t, tc.want, got, 1e-9, tc.in)
	}
}

func TestWeightMatchingOptions(t *testing.T) {
	p := Product{Specs: []SpecValue{{Key: "peso_total", Name: "Peso total", Unit: "kg", Value: "3 kg"}}}

	_, ok := DefaultOptions().Weight(p)
	assert.False(t, ok, "canonical key only by default")

	w, ok := Options{LegacyWeightMatch: true}.Weight(p)
	require.True(t, ok)
	assert.Equal(t, 3.0, w)

	byUnit := Product{Specs: []SpecValue{{Key: "x", Name: "Weight", Unit: "KG", Value: "4"}}}
	w, ok = Options{LegacyWeightMatch: true}.Weight(byUnit)
	require.True(t, ok)
	assert.Equal(t, 4.0, w)
}

func TestFacetsSortedBySortOrder(t *testing.T) {
	products := catalog()

	cats := FacetCategories(products)
	require.Len(t, cats, 2)
	assert.Equal(t, "bags", cats[0].Slug)
	assert.Equal(t, 2, cats[0].Count)
	assert.Equal(t, "tents", cats[1].Slug)
	assert.Equal(t, 2, cats[1].Count)

	acts := FacetActivities(products)
	require.Len(t, acts, 2)
	assert.Equal(t, "alpine", acts[0].Slug)
	assert.Equal(t, 2, acts[0].Count)
	assert.Equal(t, "trekking", acts[1].Slug)
	assert.Equal(t, 3, acts[1].Count)

	// equal sort order keeps first-seen order
	brands := FacetBrands(products)
	require.Len(t, brands, 2)
	assert.Equal(t, "msr", brands[0].Slug)
	assert.Equal(t, "deuter", brands[1].Slug)
}

func TestFacetActivitiesCountsProductOnce(t *testing.T) {
	p := Product{ID: "x", Subcategories: []SubRef{trekking, trekking}}
	acts := FacetActivities([]Product{p})
	require.Len(t, acts, 1)
	assert.Equal(t, 1, acts[0].Count)
}

func TestCategoryCountsSumToCategorisedProducts(t *testing.T) {
	products := catalog()
	total := 0
	for _, e := range FacetCategories(products) {
		total += e.Count
	}
	withCategory := 0
	for _, p := range products {
		if p.Category != nil {
			withCategory++
		}
	}
	assert.Equal(t, withCategory, total)
}

func TestRangesEmptyWhenNoValues(t *testing.T) {
	assert.Equal(t, Range{}, PriceRange(nil))
	assert.Equal(t, Range{}, WeightRange([]Product{{ID: "x"}}))
	assert.Equal(t, Range{Min: 1.54, Max: 1.86}, WeightRange(catalog()[:2]))
}

func TestSummarizePriceRangeIgnoresOwnFilter(t *testing.T) {
	products := catalog()
	withPrice := Summarize(products, Selection{Category: "tents", MinPrice: ptr(500)})
	without := Summarize(products, Selection{Category: "tents"})

	assert.Equal(t, without.Price, withPrice.Price)
	assert.Equal(t, Range{Min: 450, Max: 620}, withPrice.Price)
	assert.Equal(t, 1, withPrice.Total)
}

func TestSummarizeFacetsExcludeOnlyTheirOwnFilter(t *testing.T) {
	sum := Summarize(catalog(), Selection{Brands: []string{"msr"}, Category: "tents"})

	// brand facet ignores the brand filter but honours the category filter
	require.Len(t, sum.Brands, 1)
	assert.Equal(t, "msr", sum.Brands[0].Slug)

	// category facet ignores the category filter but honours the brand filter
	require.Len(t, sum.Categories, 1)
	assert.Equal(t, "tents", sum.Categories[0].Slug)

	sum = Summarize(catalog(), Selection{Category: "bags"})
	assert.Len(t, sum.Brands, 1)
	assert.Equal(t, Range{Min: 1.6, Max: 1.6}, sum.Weight)
}

func TestScenarioCategoryFilter(t *testing.T) {
	products := []Product{
		{ID: "a", Category: &Ref{ID: "c1", Slug: "tents"}, Price: ptr(80)},
		{ID: "b", Category: &Ref{ID: "c2", Slug: "bags"}, Price: ptr(40)},
	}
	sel := Selection{Category: "tents"}
	assert.Equal(t, []string{"a"}, ids(FilteredProducts(products, sel)))
	assert.Equal(t, Range{Min: 80, Max: 80}, Summarize(products, sel).Price)
}

func TestScenarioPriceFilterKeepsFullPriceRange(t *testing.T) {
	products := []Product{
		{ID: "a", Category: &Ref{ID: "c1", Slug: "tents"}, Price: ptr(80)},
		{ID: "b", Category: &Ref{ID: "c2", Slug: "bags"}, Price: ptr(40)},
	}
	sel := Selection{MinPrice: ptr(50)}
	assert.Equal(t, []string{"a"}, ids(FilteredProducts(products, sel)))
	assert.Equal(t, Range{Min: 40, Max: 80}, Summarize(products, sel).Price)
}

func TestEngineUsesItsOptions(t *testing.T) {
	products := []Product{{ID: "a", Specs: []SpecValue{{Key: "w", Value: "2"}}}}
	e := NewEngine(products, Options{WeightKey: "w"})
	assert.Len(t, e.Filter(Selection{MaxWeight: ptr(3)}), 1)
	assert.Equal(t, Range{Min: 2, Max: 2}, e.Summarize(Selection{}).Weight)
	assert.Empty(t, FilteredProducts(products, Selection{MaxWeight: ptr(3)}))
}

func TestParseSelection(t *testing.T) {
	q, err := url.ParseQuery("category=tents&subcategory=trekking,alpine&subcategory=domes&brand=msr&minPrice=10&maxPrice=abc&minWeight=1,5")
	require.NoError(t, err)

	sel := ParseSelection(q)
	assert.Equal(t, "tents", sel.Category)
	assert.Equal(t, []string{"trekking", "alpine", "domes"}, sel.Subcategories)
	assert.Equal(t, []string{"msr"}, sel.Brands)
	require.NotNil(t, sel.MinPrice)
	assert.Equal(t, 10.0, *sel.MinPrice)
	assert.Nil(t, sel.MaxPrice)
	require.NotNil(t, sel.MinWeight)
	assert.Equal(t, 1.5, *sel.MinWeight)
	assert.True(t, ParseSelection(url.Values{}).IsEmpty())
}

func TestSelectionEncodeIsCanonical(t *testing.T) {
	a := Selection{Brands: []string{"msr", "deuter", "msr"}, MinPrice: ptr(10)}
	b := Selection{Brands: []string{"deuter", "msr"}, MinPrice: ptr(10)}
	assert.Equal(t, a.Encode(), b.Encode())
	assert.Equal(t, "brand=deuter&brand=msr&minPrice=10", a.Encode())

	round := ParseSelection(a.Values())
	assert.Equal(t, a.Brands, round.Brands)
}
