package article_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DeleteArticle godoc
// @Summary Delete article
// @Tags CMS - Articles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/articles/{id} [delete]
func DeleteArticle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid article ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	res := config.DB.WithContext(ctx).Delete(&models.Article{}, "id = ?", id)
	if res.Error != nil {
		config.Log.Error("[article.delete] failed", zap.String("id", id.String()), zap.Error(res.Error))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Article not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Article deleted successfully", gin.H{"id": id}))
}
