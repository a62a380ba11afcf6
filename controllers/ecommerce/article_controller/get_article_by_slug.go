package article_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
)

// GetArticleBySlug godoc
// @Summary Read an article
// @Description Parsed blocks plus sanitised HTML of a published article
// @Tags Storefront - Articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} models.ApiResponse{data=models.ArticleDetail}
// @Failure 404 {object} models.ApiResponse
// @Router /store/articles/{slug} [get]
func GetArticleBySlug(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var article models.Article
	err := config.DB.WithContext(ctx).
		Where("slug = ? AND published = ?", c.Param("slug"), true).
		First(&article).Error
	if err != nil {
		status, msg := utils.DBErrorStatus(err, "Article")
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Article fetched successfully", article.Detail()))
}
