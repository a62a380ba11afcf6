package services

import (
	"context"
	"encoding/json"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LogActivityRequest contains the parameters for logging an admin action
type LogActivityRequest struct {
	AdminID      uuid.UUID
	AdminEmail   string
	Action       string // created_product, updated_order...
	ResourceType string
	ResourceID   string
	ResourceName string
	Changes      map[string]interface{} // {before: {...}, after: {...}}
	Status       string
	ErrorMessage string
	Context      *gin.Context // IP and User-Agent
}

// LogActivity stores one admin action. Failures are logged and swallowed:
// an audit write never fails the request that triggered it.
func LogActivity(ctx context.Context, req LogActivityRequest) {
	if req.AdminID == uuid.Nil {
		config.Log.Warn("[activity-log] admin ID missing", zap.String("action", req.Action))
		return
	}

	var changes []byte
	if req.Changes != nil {
		data, err := json.Marshal(req.Changes)
		if err != nil {
			config.Log.Warn("[activity-log] failed to marshal changes", zap.Error(err))
			data = []byte("{}")
		}
		changes = data
	}
	if req.Status == "" {
		req.Status = models.StatusSuccess
	}

	entry := models.ActivityLog{
		AdminID:      req.AdminID,
		AdminEmail:   req.AdminEmail,
		Action:       req.Action,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		ResourceName: req.ResourceName,
		Changes:      changes,
		Status:       req.Status,
		ErrorMessage: req.ErrorMessage,
	}
	if req.Context != nil {
		entry.IPAddress = utils.DescribeClient(req.Context).IP
		entry.UserAgent = req.Context.GetHeader("User-Agent")
	}

	if err := config.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		config.Log.Error("[activity-log] failed to store entry", zap.String("action", req.Action), zap.Error(err))
		return
	}
	config.Log.Debug("[activity-log] stored",
		zap.String("action", req.Action),
		zap.String("resource", req.ResourceType+"/"+req.ResourceID),
		zap.String("admin", req.AdminEmail),
	)
}

// CreateChanges wraps before/after snapshots.
func CreateChanges(before, after interface{}) map[string]interface{} {
	return map[string]interface{}{
		"before": before,
		"after":  after,
	}
}

// ListActivityLogs pages through the audit log, newest first.
func ListActivityLogs(ctx context.Context, f models.ActivityLogFilter) ([]models.ActivityLogResponse, int64, error) {
	q := config.DB.WithContext(ctx).Model(&models.ActivityLog{})
	if f.AdminID != "" {
		q = q.Where("admin_id = ?", f.AdminID)
	}
	if f.ResourceType != "" {
		q = q.Where("resource_type = ?", f.ResourceType)
	}
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := models.PageParams{Page: f.Page, Limit: f.Limit}
	var rows []models.ActivityLog
	if err := q.Order("created_at DESC").Offset(page.Offset()).Limit(f.Limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]models.ActivityLogResponse, len(rows))
	for i := range rows {
		out[i] = rows[i].ToResponse()
	}
	return out, total, nil
}
