package ecommerce_routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	catalog_cache "github.com/PalomoDev/alexika-es-sub001/cache"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Message string             `json:"message"`
	Error   bool               `json:"error"`
	Data    json.RawMessage    `json:"data"`
	Meta    *models.Pagination `json:"meta"`
}

func newStorefront(t *testing.T) (*gin.Engine, *testutil.Catalog) {
	t.Helper()
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	catalog_cache.Invalidate()
	t.Cleanup(catalog_cache.Invalidate)

	r := testutil.NewRouter()
	api := r.Group("/api/v1")
	SetupStorefrontRoutes(api)
	SetupUserRoutes(api)
	return r, cat
}

func get(t *testing.T, r http.Handler, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func cardSlugs(t *testing.T, env envelope) []string {
	t.Helper()
	var cards []models.ProductCard
	require.NoError(t, json.Unmarshal(env.Data, &cards))
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Slug
	}
	return out
}

func TestStorefrontProducts_Filters(t *testing.T) {
	r, _ := newStorefront(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"category by price", "?category=tents&sortBy=price&sortOrder=asc", []string{"tent-light", "tent-family"}},
		{"brand", "?brand=deuter", []string{"pack-40"}},
		{"any activity", "?subcategory=camping,trekking&sortBy=price&sortOrder=desc", []string{"tent-family", "pack-40", "tent-light"}},
		{"weight by name", "?maxWeight=2&sortBy=name", []string{"pack-40", "tent-light"}},
		{"price range", "?minPrice=100&maxPrice=200", []string{"pack-40"}},
		{"search", "?q=LIGERA", []string{"tent-light"}},
		{"nothing matches", "?category=tents&brand=deuter", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := get(t, r, "/api/v1/store/products"+tt.query)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, tt.want, cardSlugs(t, env))
			require.NotNil(t, env.Meta)
			assert.Equal(t, len(tt.want), env.Meta.Total)
		})
	}
}

func TestStorefrontProducts_CardsAndPaging(t *testing.T) {
	r, _ := newStorefront(t)

	w, env := get(t, r, "/api/v1/store/products?sortBy=price&sortOrder=asc&limit=2&page=2")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"tent-family"}, cardSlugs(t, env))
	assert.Equal(t, 3, env.Meta.Total)
	assert.Equal(t, 2, env.Meta.TotalPages)

	_, env = get(t, r, "/api/v1/store/products?q=ligera")
	var cards []models.ProductCard
	require.NoError(t, json.Unmarshal(env.Data, &cards))
	require.Len(t, cards, 1)
	assert.Equal(t, "89,00 €", cards[0].PriceText)
	assert.Equal(t, "1,2 kg", cards[0].Weight)
	assert.Equal(t, "MSR", cards[0].Brand)
	assert.True(t, cards[0].InStock)

	w, env = get(t, r, "/api/v1/store/products?page=100000000000000001&limit=100")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Empty(t, cardSlugs(t, env))
	assert.Equal(t, 3, env.Meta.Total)

	w, _ = get(t, r, "/api/v1/store/products?sortBy=rating")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStorefrontProductBySlug(t *testing.T) {
	r, cat := newStorefront(t)

	w, env := get(t, r, "/api/v1/store/products/tent-light")
	require.Equal(t, http.StatusOK, w.Code)
	var detail models.ProductDetail
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, cat.TentLight.ID.String(), detail.ID)
	require.Len(t, detail.Specs, 1)
	assert.Equal(t, "weight", detail.Specs[0].Key)

	w, _ = get(t, r, "/api/v1/store/products/pack-hidden")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = get(t, r, "/api/v1/store/products/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStorefrontFilters_ExcludeOwnFacet(t *testing.T) {
	r, _ := newStorefront(t)

	w, env := get(t, r, "/api/v1/store/filters?category=tents")
	require.Equal(t, http.StatusOK, w.Code)

	var meta models.FilterMetadata
	require.NoError(t, json.Unmarshal(env.Data, &meta))
	assert.Equal(t, "category=tents", meta.Query)
	assert.Equal(t, 2, meta.Total)

	// categories ignore the category choice, brands respect it
	require.Len(t, meta.Categories, 2)
	counts := map[string]int{}
	for _, e := range meta.Categories {
		counts[e.Slug] = e.Count
	}
	assert.Equal(t, map[string]int{"tents": 2, "bags": 1}, counts)
	require.Len(t, meta.Brands, 1)
	assert.Equal(t, "msr", meta.Brands[0].Slug)

	assert.Equal(t, "89,00 €", meta.PriceText.Min)
	assert.Equal(t, "320,00 €", meta.PriceText.Max)
	assert.Equal(t, "1,2 kg", meta.WeightText.Min)
	assert.Equal(t, "6,5 kg", meta.WeightText.Max)
}
