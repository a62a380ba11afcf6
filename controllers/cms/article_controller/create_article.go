package article_controller

import (
	"net/http"
	"time"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateArticle godoc
// @Summary Create article
// @Description Content uses the bracket markup ([title], [p], [list], [item], [b], [i], [link href=...])
// @Tags CMS - Articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param article body models.ArticleRequest true "Article"
// @Success 201 {object} models.ApiResponse{data=models.Article}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /admin/articles [post]
func CreateArticle(c *gin.Context) {
	var req models.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", err.Error()))
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}
	article := models.Article{
		Title:         req.Title,
		Slug:          slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
		Published:     req.Published,
		Tags:          models.EncodeTags(req.Tags),
	}
	if req.Published {
		now := time.Now().UTC()
		article.PublishedAt = &now
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&article).Error; err != nil {
		status, msg := utils.DBErrorStatus(err, "Article")
		config.Log.Error("[article.create] failed", zap.String("slug", slug), zap.Error(err))
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	c.Set("createdResourceID", article.ID.String())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Article created successfully", article))
}
