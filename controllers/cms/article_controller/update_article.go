package article_controller

import (
	"net/http"
	"time"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UpdateArticle godoc
// @Summary Update article
// @Description Publishing stamps published_at the first time; unpublishing keeps it
// @Tags CMS - Articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Param article body models.UpdateArticleRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.Article}
// @Failure 404 {object} models.ApiResponse
// @Router /admin/articles/{id} [patch]
func UpdateArticle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid article ID"))
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var article models.Article
	if err := config.DB.WithContext(ctx).First(&article, "id = ?", id).Error; err != nil {
		status, msg := utils.DBErrorStatus(err, "Article")
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Slug != nil {
		updates["slug"] = utils.Slugify(*req.Slug)
	}
	if req.Excerpt != nil {
		updates["excerpt"] = *req.Excerpt
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.CoverImageURL != nil {
		updates["cover_image_url"] = *req.CoverImageURL
	}
	if req.Tags != nil {
		updates["tags"] = models.EncodeTags(*req.Tags)
	}
	if req.Published != nil {
		updates["published"] = *req.Published
		if *req.Published && article.PublishedAt == nil {
			updates["published_at"] = time.Now().UTC()
		}
	}

	if len(updates) > 0 {
		if err := config.DB.WithContext(ctx).Model(&article).Updates(updates).Error; err != nil {
			status, msg := utils.DBErrorStatus(err, "Article")
			config.Log.Error("[article.update] failed", zap.String("id", id.String()), zap.Error(err))
			c.JSON(status, models.ErrorResponse(c, msg))
			return
		}
	}
	if err := config.DB.WithContext(ctx).First(&article, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Article updated successfully", article))
}
