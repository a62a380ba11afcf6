package article_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/gin-gonic/gin"
)

// PreviewArticle godoc
// @Summary Render markup without saving
// @Description Parses article markup and returns the block tree, sanitised HTML and plain text
// @Tags CMS - Articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.ArticlePreviewRequest true "Markup source"
// @Success 200 {object} models.ApiResponse{data=models.ArticleRendered}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/articles/preview [post]
func PreviewArticle(c *gin.Context) {
	var req models.ArticlePreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", err.Error()))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Preview rendered", models.RenderArticle(req.Content)))
}
