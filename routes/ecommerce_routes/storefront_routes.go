package ecommerce_routes

import (
	store_article "github.com/PalomoDev/alexika-es-sub001/controllers/ecommerce/article_controller"
	store_brand "github.com/PalomoDev/alexika-es-sub001/controllers/ecommerce/brand_controller"
	store_category "github.com/PalomoDev/alexika-es-sub001/controllers/ecommerce/category_controller"
	store_filter "github.com/PalomoDev/alexika-es-sub001/controllers/ecommerce/filter_controller"
	store_product "github.com/PalomoDev/alexika-es-sub001/controllers/ecommerce/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts)
		products.GET("/:slug", store_product.GetStorefrontProductBySlug)
	}

	store.GET("/filters", store_filter.GetFilterMetadata)
	store.GET("/categories", store_category.GetCategories)
	store.GET("/brands", store_brand.GetBrands)

	articles := store.Group("/articles")
	{
		articles.GET("", store_article.GetArticles)
		articles.GET("/:slug", store_article.GetArticleBySlug)
	}
}
