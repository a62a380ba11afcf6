package article_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetArticles godoc
// @Summary List articles
// @Description Drafts and published articles, most recently edited first
// @Tags CMS - Articles
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param q query string false "Title contains"
// @Success 200 {object} models.ApiResponse{data=[]models.Article}
// @Router /admin/articles [get]
func GetArticles(c *gin.Context) {
	var page models.PageParams
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid pagination", err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var total int64
	if err := page.Search(config.DB.WithContext(ctx).Model(&models.Article{}), "title").Count(&total).Error; err != nil {
		config.Log.Error("[article.list] count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	articles := make([]models.Article, 0)
	if err := page.Search(config.DB.WithContext(ctx), "title").
		Order("updated_at DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&articles).Error; err != nil {
		config.Log.Error("[article.list] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Articles retrieved successfully", articles,
		models.NewPagination(page.Page, page.Limit, total)))
}
