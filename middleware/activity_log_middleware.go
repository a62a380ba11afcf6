package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ════════════════════════════════════════════════════════════
// Configuration Maps
// ════════════════════════════════════════════════════════════

// pathToResourceType maps URL segments to resource types
var pathToResourceType = map[string]string{
	"brands":         models.ResourceTypeBrand,
	"categories":     models.ResourceTypeCategory,
	"subcategories":  models.ResourceTypeSubcategory,
	"features":       models.ResourceTypeFeature,
	"specifications": models.ResourceTypeSpecification,
	"products":       models.ResourceTypeProduct,
	"images":         models.ResourceTypeProductImage,
	"articles":       models.ResourceTypeArticle,
	"orders":         models.ResourceTypeOrder,
	"admins":         models.ResourceTypeAdmin,
}

// resourceTypeToNameField maps resource types to their display field
var resourceTypeToNameField = map[string]string{
	models.ResourceTypeBrand:         "name",
	models.ResourceTypeCategory:      "name",
	models.ResourceTypeSubcategory:   "name",
	models.ResourceTypeFeature:       "name",
	models.ResourceTypeSpecification: "name",
	models.ResourceTypeProduct:       "name",
	models.ResourceTypeProductImage:  "name",
	models.ResourceTypeArticle:       "title",
	models.ResourceTypeOrder:         "order_number",
	models.ResourceTypeAdmin:         "email",
}

// methodToActionVerb maps write methods to the verb half of an action name
var methodToActionVerb = map[string]string{
	http.MethodPost:   models.ActionCreate,
	http.MethodPatch:  models.ActionUpdate,
	http.MethodPut:    models.ActionUpdate,
	http.MethodDelete: models.ActionDelete,
}

// ════════════════════════════════════════════════════════════
// Activity Logging Middleware
// ════════════════════════════════════════════════════════════

// ActivityLoggingMiddleware records admin writes with before/after
// snapshots. Must run after AdminAuthMiddleware.
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only log write operations; previews render without saving
		verb, ok := methodToActionVerb[c.Request.Method]
		if !ok || strings.HasSuffix(c.FullPath(), "/preview") {
			c.Next()
			return
		}

		// Get admin info from context (set by AdminAuthMiddleware)
		adminID, adminEmail, ok := GetAdminFromContext(c)
		if !ok {
			config.Log.Warn("[activity-logging] admin info not in context")
			c.Next()
			return
		}

		// Determine resource type from URL path
		resourceType := extractResourceType(c.Request.URL.Path)
		if resourceType == "" {
			c.Next()
			return
		}
		if resourceType == models.ResourceTypeProductImage && verb == models.ActionCreate {
			verb = models.ActionUpload
		}
		action := models.ActionName(verb, resourceType)

		// images are logged against their product
		snapshotType := resourceType
		if snapshotType == models.ResourceTypeProductImage {
			snapshotType = models.ResourceTypeProduct
		}

		// Capture state BEFORE the request (updates and deletes only)
		resourceID := c.Param("id")
		var before interface{}
		if c.Request.Method != http.MethodPost && resourceID != "" {
			before = fetchResource(snapshotType, resourceID)
		}
		resourceName := extractResourceName(snapshotType, before)

		// Process request
		c.Next()

		ctx, cancel := config.WithTimeout()
		defer cancel()

		status := c.Writer.Status()
		if status >= 200 && status < 300 {
			// Creates only know their ID once the handler ran
			if resourceID == "" {
				resourceID = c.GetString("createdResourceID")
			}
			var after interface{}
			if resourceID != "" {
				after = fetchResource(snapshotType, resourceID)
			}
			if name := extractResourceName(snapshotType, after); name != "" {
				resourceName = name
			}
			services.LogActivity(ctx, services.LogActivityRequest{
				AdminID:      adminID,
				AdminEmail:   adminEmail,
				Action:       action,
				ResourceType: resourceType,
				ResourceID:   resourceID,
				ResourceName: resourceName,
				Changes:      services.CreateChanges(before, after),
				Status:       models.StatusSuccess,
				Context:      c,
			})
			return
		}

		// Failed requests are logged too, without changes
		services.LogActivity(ctx, services.LogActivityRequest{
			AdminID:      adminID,
			AdminEmail:   adminEmail,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			ResourceName: resourceName,
			Status:       models.StatusFailed,
			ErrorMessage: "Request failed with status " + strconv.Itoa(status) + " " + http.StatusText(status),
			Context:      c,
		})
	}
}

// ════════════════════════════════════════════════════════════
// Helper Functions
// ════════════════════════════════════════════════════════════

// extractResourceType finds the last known resource segment,
// e.g. "/api/v1/admin/products/<id>/images" → "product_image".
func extractResourceType(path string) string {
	parts := strings.Split(path, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if isIDParam(parts[i]) {
			continue
		}
		if rt, ok := pathToResourceType[parts[i]]; ok {
			return rt
		}
	}
	return ""
}

// isIDParam skips empty segments, route params and UUIDs.
func isIDParam(segment string) bool {
	if segment == "" || strings.HasPrefix(segment, ":") {
		return true
	}
	_, err := uuid.Parse(segment)
	return err == nil
}

// fetchResource loads a snapshot of the resource, or nil when it is gone.
func fetchResource(resourceType, resourceID string) interface{} {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var dest interface{}
	switch resourceType {
	case models.ResourceTypeBrand:
		dest = &models.Brand{}
	case models.ResourceTypeCategory:
		dest = &models.Category{}
	case models.ResourceTypeSubcategory:
		dest = &models.Subcategory{}
	case models.ResourceTypeFeature:
		dest = &models.Feature{}
	case models.ResourceTypeSpecification:
		dest = &models.Specification{}
	case models.ResourceTypeProduct:
		dest = &models.Product{}
	case models.ResourceTypeArticle:
		dest = &models.Article{}
	case models.ResourceTypeOrder:
		dest = &models.Order{}
	case models.ResourceTypeAdmin:
		dest = &models.Admin{}
	default:
		return nil
	}

	if err := config.DB.WithContext(ctx).First(dest, "id = ?", resourceID).Error; err != nil {
		config.Log.Debug("[activity-logging] snapshot not found",
			zap.String("type", resourceType), zap.String("id", resourceID), zap.Error(err))
		return nil
	}
	return dest
}

// extractResourceName reads the display field from the JSON form of obj.
func extractResourceName(resourceType string, obj interface{}) string {
	if obj == nil {
		return ""
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return ""
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return ""
	}
	if v, ok := m[resourceTypeToNameField[resourceType]].(string); ok {
		return v
	}
	return ""
}
