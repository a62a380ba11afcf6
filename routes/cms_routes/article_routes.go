package cms_routes

import (
	"github.com/PalomoDev/alexika-es-sub001/controllers/cms/article_controller"
	"github.com/gin-gonic/gin"
)

func SetupArticleRoutes(rg *gin.RouterGroup) {
	articles := rg.Group("/articles")
	articles.GET("", article_controller.GetArticles)
	articles.GET("/:id", article_controller.GetArticleByID)
	articles.POST("", article_controller.CreateArticle)
	articles.POST("/preview", article_controller.PreviewArticle)
	articles.PATCH("/:id", article_controller.UpdateArticle)
	articles.DELETE("/:id", article_controller.DeleteArticle)
}
