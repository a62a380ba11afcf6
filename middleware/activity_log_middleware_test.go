package middleware

import (
	"testing"

	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestExtractResourceType(t *testing.T) {
	id := uuid.NewString()
	tests := map[string]string{
		"/api/v1/admin/brands":                           models.ResourceTypeBrand,
		"/api/v1/admin/brands/" + id:                     models.ResourceTypeBrand,
		"/api/v1/admin/products/" + id + "/images":       models.ResourceTypeProductImage,
		"/api/v1/admin/products/" + id + "/images/" + id: models.ResourceTypeProductImage,
		"/api/v1/admin/orders/" + id + "/status":         models.ResourceTypeOrder,
		"/api/v1/admin/admins/" + id + "/status":         models.ResourceTypeAdmin,
		"/api/v1/admin/subcategories/" + id:              models.ResourceTypeSubcategory,
		"/api/v1/admin/logout":                           "",
	}
	for path, want := range tests {
		assert.Equal(t, want, extractResourceType(path), path)
	}
}

func TestExtractResourceName(t *testing.T) {
	assert.Equal(t, "MSR", extractResourceName(models.ResourceTypeBrand, map[string]interface{}{"name": "MSR"}))
	assert.Equal(t, "", extractResourceName(models.ResourceTypeBrand, nil))
}
