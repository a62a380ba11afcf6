package cms_routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	catalog_cache "github.com/PalomoDev/alexika-es-sub001/cache"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/PalomoDev/alexika-es-sub001/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Message string             `json:"message"`
	Error   bool               `json:"error"`
	Data    json.RawMessage    `json:"data"`
	Meta    *models.Pagination `json:"meta"`
}

func call(t *testing.T, r http.Handler, token, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func newAdminAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	catalog_cache.Invalidate()

	r := testutil.NewRouter()
	SetupAdminRoutes(r.Group("/api/v1"))
	return r, db
}

func createAdmin(t *testing.T, db *gorm.DB, email, role string) models.Admin {
	t.Helper()
	hash, err := services.HashPassword("cumbre-2026")
	require.NoError(t, err)
	admin := models.Admin{Email: email, Name: "Admin", PasswordHash: hash, Role: role}
	require.NoError(t, db.Create(&admin).Error)
	return admin
}

func login(t *testing.T, r http.Handler, email string) string {
	t.Helper()
	w, env := call(t, r, "", http.MethodPost, "/api/v1/admin/login",
		models.AdminLoginRequest{Email: email, Password: "cumbre-2026"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.AdminLoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestAdminLoginAndLogout(t *testing.T) {
	r, db := newAdminAPI(t)
	createAdmin(t, db, "jefa@example.com", models.RoleSuperAdmin)

	w, _ := call(t, r, "", http.MethodPost, "/api/v1/admin/login",
		models.AdminLoginRequest{Email: "jefa@example.com", Password: "wrong"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = call(t, r, "", http.MethodGet, "/api/v1/admin/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := login(t, r, "jefa@example.com")
	w, _ = call(t, r, token, http.MethodGet, "/api/v1/admin/me", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = call(t, r, token, http.MethodPost, "/api/v1/admin/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = call(t, r, token, http.MethodGet, "/api/v1/admin/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var logins int64
	require.NoError(t, db.Model(&models.ActivityLog{}).
		Where("action = ?", models.ActionName(models.ActionLogin, models.ResourceTypeAdmin)).
		Count(&logins).Error)
	assert.Equal(t, int64(1), logins)
}

func TestBrandCRUD_IsAudited(t *testing.T) {
	r, db := newAdminAPI(t)
	createAdmin(t, db, "editora@example.com", models.RoleEditor)
	token := login(t, r, "editora@example.com")

	w, env := call(t, r, token, http.MethodPost, "/api/v1/admin/brands", models.BrandRequest{Name: "Black Diamond"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var brand models.Brand
	require.NoError(t, json.Unmarshal(env.Data, &brand))
	assert.Equal(t, "black-diamond", brand.Slug)
	assert.True(t, brand.Active)

	w, _ = call(t, r, token, http.MethodPost, "/api/v1/admin/brands", models.BrandRequest{Name: "Black Diamond"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = call(t, r, token, http.MethodPost, "/api/v1/admin/brands", map[string]string{"slug": "no-name"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	name := "Black Diamond Equipment"
	w, env = call(t, r, token, http.MethodPatch, "/api/v1/admin/brands/"+brand.ID.String(), models.UpdateBrandRequest{Name: &name})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, env = call(t, r, token, http.MethodGet, "/api/v1/admin/brands?q=equipment", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var brands []models.Brand
	require.NoError(t, json.Unmarshal(env.Data, &brands))
	require.Len(t, brands, 1)
	assert.Equal(t, name, brands[0].Name)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 1, env.Meta.Total)

	w, _ = call(t, r, token, http.MethodDelete, "/api/v1/admin/brands/"+brand.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = call(t, r, token, http.MethodGet, "/api/v1/admin/brands/"+brand.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var logs []models.ActivityLog
	require.NoError(t, db.Where("resource_type = ?", models.ResourceTypeBrand).Order("created_at ASC").Find(&logs).Error)
	actions := map[string]int{}
	for _, l := range logs {
		actions[l.Action+"/"+l.Status]++
	}
	assert.Equal(t, 1, actions[models.ActionName(models.ActionCreate, models.ResourceTypeBrand)+"/"+models.StatusSuccess])
	assert.Equal(t, 2, actions[models.ActionName(models.ActionCreate, models.ResourceTypeBrand)+"/"+models.StatusFailed])
	assert.Equal(t, 1, actions[models.ActionName(models.ActionUpdate, models.ResourceTypeBrand)+"/"+models.StatusSuccess])
	assert.Equal(t, 1, actions[models.ActionName(models.ActionDelete, models.ResourceTypeBrand)+"/"+models.StatusSuccess])
	for _, l := range logs {
		if l.Action == models.ActionName(models.ActionDelete, models.ResourceTypeBrand) {
			assert.Equal(t, name, l.ResourceName)
		}
	}
}

func TestSuperAdminOnlyRoutes(t *testing.T) {
	r, db := newAdminAPI(t)
	boss := createAdmin(t, db, "jefa@example.com", models.RoleSuperAdmin)
	editor := createAdmin(t, db, "editora@example.com", models.RoleEditor)

	editorToken := login(t, r, "editora@example.com")
	w, _ := call(t, r, editorToken, http.MethodGet, "/api/v1/admin/admins", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	bossToken := login(t, r, "jefa@example.com")
	w, _ = call(t, r, bossToken, http.MethodGet, "/api/v1/admin/admins", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = call(t, r, bossToken, http.MethodPatch, "/api/v1/admin/admins/"+boss.ID.String()+"/status",
		map[string]string{"status": models.AdminStatusSuspended})
	assert.Equal(t, http.StatusBadRequest, w.Code, "own status")

	w, _ = call(t, r, bossToken, http.MethodPatch, "/api/v1/admin/admins/"+editor.ID.String()+"/status",
		map[string]string{"status": models.AdminStatusSuspended})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, _ = call(t, r, editorToken, http.MethodGet, "/api/v1/admin/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
