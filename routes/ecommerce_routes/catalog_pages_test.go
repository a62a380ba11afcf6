package ecommerce_routes

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/markup"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestStorefrontCategoriesAndBrands(t *testing.T) {
	r, _ := newStorefront(t)

	w, env := get(t, r, "/api/v1/store/categories")
	require.Equal(t, http.StatusOK, w.Code)
	var tree []models.StorefrontCategory
	require.NoError(t, json.Unmarshal(env.Data, &tree))
	require.Len(t, tree, 2)
	assert.Equal(t, "tents", tree[0].Slug)
	assert.Equal(t, 2, tree[0].ProductCount)
	assert.Len(t, tree[0].Subcategories, 2)
	assert.Equal(t, "bags", tree[1].Slug)
	assert.Equal(t, 1, tree[1].ProductCount, "inactive products are not counted")

	w, env = get(t, r, "/api/v1/store/brands")
	require.Equal(t, http.StatusOK, w.Code)
	var brands []models.Brand
	require.NoError(t, json.Unmarshal(env.Data, &brands))
	require.Len(t, brands, 2)
	assert.Equal(t, "msr", brands[0].Slug)
	assert.Equal(t, "deuter", brands[1].Slug)
}

func seedArticles(t *testing.T) {
	t.Helper()
	now := time.Now().UTC()
	earlier := now.Add(-time.Hour)
	articles := []models.Article{
		{
			Title:       "Vestirse por capas",
			Slug:        "vestirse-por-capas",
			Content:     "[title]Tres capas[/title][p]Una capa [b]base[/b] y <script>alert(1)</script>[/p]",
			Published:   true,
			PublishedAt: &now,
			Tags:        datatypes.JSON(`["ropa","capas"]`),
		},
		{
			Title:       "Montar la tienda",
			Slug:        "montar-la-tienda",
			Content:     "[p]Busca un suelo llano.[/p]",
			Published:   true,
			PublishedAt: &earlier,
			Tags:        datatypes.JSON(`["tiendas"]`),
		},
		{
			Title:   "Borrador",
			Slug:    "borrador",
			Content: "[p]Sin terminar[/p]",
			Tags:    datatypes.JSON(`[]`),
		},
	}
	for i := range articles {
		require.NoError(t, config.DB.Create(&articles[i]).Error)
	}
}

func TestStorefrontArticles(t *testing.T) {
	r, _ := newStorefront(t)
	seedArticles(t)

	w, env := get(t, r, "/api/v1/store/articles")
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.ArticleSummary
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 2, "drafts stay hidden")
	assert.Equal(t, "vestirse-por-capas", list[0].Slug)
	assert.Equal(t, []string{"ropa", "capas"}, list[0].Tags)
	assert.Equal(t, 2, env.Meta.Total)

	_, env = get(t, r, "/api/v1/store/articles?tag=tiendas")
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "montar-la-tienda", list[0].Slug)

	w, env = get(t, r, "/api/v1/store/articles/vestirse-por-capas")
	require.Equal(t, http.StatusOK, w.Code)
	var detail models.ArticleDetail
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	require.Len(t, detail.Blocks, 2)
	assert.Equal(t, markup.BlockHeading, detail.Blocks[0].Type)
	assert.Equal(t, markup.BlockParagraph, detail.Blocks[1].Type)
	assert.Contains(t, detail.HTML, "<h2>Tres capas</h2>")
	assert.Contains(t, detail.HTML, "<strong>base</strong>")
	assert.NotContains(t, detail.HTML, "<script>")

	w, _ = get(t, r, "/api/v1/store/articles/borrador")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	r, _ := newStorefront(t)
	c, _ := signedIn(t, r, "ana@example.com")

	name, phone := "  Ana Ruiz  ", "+34 600 000 000"
	w, env := c.do(http.MethodPatch, "/api/v1/user/profile", models.UpdateProfileRequest{Name: &name, Phone: &phone})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var profile models.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "Ana Ruiz", profile.Name)
	require.NotNil(t, profile.Phone)
	assert.Equal(t, phone, *profile.Phone)

	blank := "   "
	w, _ = c.do(http.MethodPatch, "/api/v1/user/profile", models.UpdateProfileRequest{Name: &blank})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	empty := ""
	w, env = c.do(http.MethodPatch, "/api/v1/user/profile", models.UpdateProfileRequest{Phone: &empty})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Nil(t, profile.Phone)
	assert.Equal(t, "Ana Ruiz", profile.Name)

	anon := client{t: t, r: r}
	w, _ = anon.do(http.MethodPatch, "/api/v1/user/profile", models.UpdateProfileRequest{Name: &name})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
