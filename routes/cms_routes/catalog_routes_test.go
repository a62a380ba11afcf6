package cms_routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryAndSubcategoryCRUD(t *testing.T) {
	r, db := newAdminAPI(t)
	cat := testutil.SeedCatalog(t, db)
	createAdmin(t, db, "editora@example.com", models.RoleEditor)
	token := login(t, r, "editora@example.com")

	w, _ := call(t, r, token, http.MethodDelete, "/api/v1/admin/categories/"+cat.Tents.ID.String(), nil)
	assert.Equal(t, http.StatusConflict, w.Code, "tents still has products")
	var kept int64
	require.NoError(t, db.Model(&models.Category{}).Where("id = ?", cat.Tents.ID).Count(&kept).Error)
	assert.Equal(t, int64(1), kept)

	w, env := call(t, r, token, http.MethodPost, "/api/v1/admin/categories", models.CategoryRequest{Name: "Sacos de dormir"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var sacos models.Category
	require.NoError(t, json.Unmarshal(env.Data, &sacos))
	assert.Equal(t, "sacos-de-dormir", sacos.Slug)

	w, _ = call(t, r, token, http.MethodPost, "/api/v1/admin/subcategories",
		models.SubcategoryRequest{CategoryID: uuid.New(), Name: "Huérfana"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = call(t, r, token, http.MethodPost, "/api/v1/admin/subcategories",
		models.SubcategoryRequest{CategoryID: sacos.ID, Name: "Alpinismo", IsActivity: true})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var alpinismo models.Subcategory
	require.NoError(t, json.Unmarshal(env.Data, &alpinismo))
	assert.True(t, alpinismo.IsActivity)

	name := "Alta montaña"
	w, env = call(t, r, token, http.MethodPatch, "/api/v1/admin/subcategories/"+alpinismo.ID.String(),
		models.UpdateSubcategoryRequest{Name: &name})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, &alpinismo))
	assert.Equal(t, name, alpinismo.Name)

	w, env = call(t, r, token, http.MethodGet, "/api/v1/admin/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 3, env.Meta.Total)

	// an empty category goes, subcategories included
	w, _ = call(t, r, token, http.MethodDelete, "/api/v1/admin/categories/"+sacos.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var subs int64
	require.NoError(t, db.Model(&models.Subcategory{}).Where("category_id = ?", sacos.ID).Count(&subs).Error)
	assert.Zero(t, subs)

	w, _ = call(t, r, token, http.MethodDelete, "/api/v1/admin/subcategories/"+cat.Trekking.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var links int64
	require.NoError(t, db.Table("product_subcategories").Where("subcategory_id = ?", cat.Trekking.ID).Count(&links).Error)
	assert.Zero(t, links)

	w, _ = call(t, r, token, http.MethodDelete, "/api/v1/admin/subcategories/"+cat.Trekking.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFeatureAndSpecificationCRUD(t *testing.T) {
	r, db := newAdminAPI(t)
	cat := testutil.SeedCatalog(t, db)
	createAdmin(t, db, "editora@example.com", models.RoleEditor)
	token := login(t, r, "editora@example.com")

	w, env := call(t, r, token, http.MethodPost, "/api/v1/admin/features", models.FeatureRequest{Name: "Impermeable"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var feature models.Feature
	require.NoError(t, json.Unmarshal(env.Data, &feature))
	assert.Equal(t, "impermeable", feature.Slug)

	w, _ = call(t, r, token, http.MethodPost, "/api/v1/admin/features", models.FeatureRequest{Name: "Impermeable"})
	assert.Equal(t, http.StatusConflict, w.Code)

	desc := "Columna de agua de 3000 mm"
	w, env = call(t, r, token, http.MethodPatch, "/api/v1/admin/features/"+feature.ID.String(),
		models.UpdateFeatureRequest{Description: &desc})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &feature))
	assert.Equal(t, desc, feature.Description)

	w, env = call(t, r, token, http.MethodGet, "/api/v1/admin/features", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, env.Meta.Total)

	w, _ = call(t, r, token, http.MethodDelete, "/api/v1/admin/features/"+feature.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = call(t, r, token, http.MethodDelete, "/api/v1/admin/features/"+feature.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = call(t, r, token, http.MethodPost, "/api/v1/admin/specifications",
		models.SpecificationRequest{Key: " Capacity ", Name: "Capacidad", Unit: "L"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var capacity models.Specification
	require.NoError(t, json.Unmarshal(env.Data, &capacity))
	assert.Equal(t, "capacity", capacity.Key)

	w, _ = call(t, r, token, http.MethodPost, "/api/v1/admin/specifications",
		models.SpecificationRequest{Key: "weight", Name: "Otro peso"})
	assert.Equal(t, http.StatusConflict, w.Code)

	unit := "litros"
	w, env = call(t, r, token, http.MethodPatch, "/api/v1/admin/specifications/"+capacity.ID.String(),
		models.UpdateSpecificationRequest{Unit: &unit})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &capacity))
	assert.Equal(t, unit, capacity.Unit)

	w, env = call(t, r, token, http.MethodGet, "/api/v1/admin/specifications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, env.Meta.Total)

	// deleting a specification drops the values products had for it
	w, _ = call(t, r, token, http.MethodDelete, "/api/v1/admin/specifications/"+cat.Weight.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var values int64
	require.NoError(t, db.Model(&models.ProductSpecValue{}).Where("specification_id = ?", cat.Weight.ID).Count(&values).Error)
	assert.Zero(t, values)
}
