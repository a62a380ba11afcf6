package catalog_cache

import (
	"context"
	"testing"

	"github.com/PalomoDev/alexika-es-sub001/facets"
	"github.com/PalomoDev/alexika-es-sub001/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 { return &v }

func TestEngine_CachesUntilInvalidated(t *testing.T) {
	calls := 0
	restore := SetLoader(func(ctx context.Context) ([]facets.Product, error) {
		calls++
		return []facets.Product{{ID: "1", Slug: "tent", Price: price(80)}}, nil
	})
	defer restore()

	e1, err := Engine(context.Background())
	require.NoError(t, err)
	e2, err := Engine(context.Background())
	require.NoError(t, err)

	assert.Same(t, e1, e2)
	assert.Equal(t, 1, calls)

	before := Version()
	Invalidate()
	assert.Equal(t, before+1, Version())

	e3, err := Engine(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, e1, e3)
	assert.Equal(t, 2, calls)
}

func TestSummary_WithoutRedisUsesSnapshot(t *testing.T) {
	restore := SetLoader(func(ctx context.Context) ([]facets.Product, error) {
		return []facets.Product{
			{ID: "1", Category: &facets.Ref{ID: "c1", Slug: "tents"}, Price: price(80)},
			{ID: "2", Category: &facets.Ref{ID: "c2", Slug: "bags"}, Price: price(40)},
		}, nil
	})
	defer restore()

	min := 50.0
	s, err := Summary(context.Background(), facets.Selection{MinPrice: &min})
	require.NoError(t, err)

	assert.Equal(t, 1, s.Total)
	assert.Equal(t, facets.Range{Min: 40, Max: 80}, s.Price)
}

func TestLoadProducts_SkipsHiddenProducts(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)

	products, err := LoadProducts(context.Background())
	require.NoError(t, err)

	slugs := make([]string, 0, len(products))
	for _, p := range products {
		slugs = append(slugs, p.Slug)
	}
	assert.ElementsMatch(t, []string{"tent-light", "tent-family", "pack-40"}, slugs)

	require.NoError(t, db.Model(&cat.Deuter).Update("active", false).Error)
	products, err = LoadProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 2)

	for _, p := range products {
		if p.Slug == "tent-light" {
			require.Len(t, p.Specs, 1)
			assert.Equal(t, "weight", p.Specs[0].Key)
			assert.Equal(t, "1,2 kg", p.Specs[0].Value)
			require.Len(t, p.Subcategories, 1)
			assert.True(t, p.Subcategories[0].IsActivity)
			assert.Equal(t, "msr", p.Brand.Slug)
		}
	}
}
