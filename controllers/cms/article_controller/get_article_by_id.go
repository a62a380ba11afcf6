package article_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type articleWithPreview struct {
	models.Article
	Rendered models.ArticleRendered `json:"rendered"`
}

// GetArticleByID godoc
// @Summary Get article with its rendered preview
// @Tags CMS - Articles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/articles/{id} [get]
func GetArticleByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid article ID"))
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

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Article retrieved successfully", articleWithPreview{
		Article:  article,
		Rendered: models.RenderArticle(article.Content),
	}))
}
