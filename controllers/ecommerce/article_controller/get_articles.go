package article_controller

import (
	"net/http"
	"strings"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type articleListQuery struct {
	models.PageParams
	Tag string `form:"tag"`
}

// GetArticles godoc
// @Summary Published articles
// @Description Newest first
// @Tags Storefront - Articles
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param q query string false "Title contains"
// @Param tag query string false "Only articles with this tag"
// @Success 200 {object} models.ApiResponse{data=[]models.ArticleSummary,meta=models.Pagination}
// @Router /store/articles [get]
func GetArticles(c *gin.Context) {
	var query articleListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid query", err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := query.Search(config.DB.WithContext(ctx).Model(&models.Article{}), "title").
		Where("published = ?", true)
	if tag := strings.TrimSpace(query.Tag); tag != "" {
		db = db.Where("CAST(tags AS TEXT) LIKE ?", `%"`+tag+`"%`)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		config.Log.Error("[store.articles] count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch articles"))
		return
	}

	var articles []models.Article
	if err := db.Order("published_at DESC").
		Offset(query.Offset()).Limit(query.Limit).
		Find(&articles).Error; err != nil {
		config.Log.Error("[store.articles] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch articles"))
		return
	}

	out := make([]models.ArticleSummary, len(articles))
	for i := range articles {
		out[i] = articles[i].Summary()
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Articles fetched successfully", out,
		models.NewPagination(query.Page, query.Limit, total)))
}
