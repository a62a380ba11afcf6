package admin_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/middleware"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type updateAdminStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended"`
}

// UpdateAdminStatus godoc
// @Summary Suspend or reactivate an admin
// @Description Suspending also ends all of the admin's sessions
// @Tags Admin - Management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Param body body updateAdminStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse{data=models.AdminResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/admins/{id}/status [patch]
func UpdateAdminStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid admin ID"))
		return
	}
	var req updateAdminStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", err.Error()))
		return
	}
	if self, _, _ := middleware.GetAdminFromContext(c); self == id {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "You cannot change your own status"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&admin, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&admin).Update("status", req.Status).Error; err != nil {
			return err
		}
		if req.Status == models.AdminStatusSuspended {
			return tx.Model(&models.AdminSession{}).Where("admin_id = ?", id).Update("is_active", false).Error
		}
		return nil
	})
	if err != nil {
		status, msg := utils.DBErrorStatus(err, "Admin")
		config.Log.Warn("[admin.status] failed", zap.String("id", id.String()), zap.Error(err))
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	admin.Status = req.Status
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin status updated", admin.ToResponse()))
}
