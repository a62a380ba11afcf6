package cms_routes

import (
	"github.com/PalomoDev/alexika-es-sub001/controllers/cms/brand_controller"
	"github.com/PalomoDev/alexika-es-sub001/controllers/cms/category_controller"
	"github.com/PalomoDev/alexika-es-sub001/controllers/cms/feature_controller"
	"github.com/PalomoDev/alexika-es-sub001/controllers/cms/product_controller"
	"github.com/PalomoDev/alexika-es-sub001/controllers/cms/specification_controller"
	"github.com/gin-gonic/gin"
)

func SetupBrandRoutes(rg *gin.RouterGroup) {
	brands := rg.Group("/brands")
	brands.GET("", brand_controller.GetBrands)
	brands.GET("/:id", brand_controller.GetBrandByID)
	brands.POST("", brand_controller.CreateBrand)
	brands.PATCH("/:id", brand_controller.UpdateBrand)
	brands.DELETE("/:id", brand_controller.DeleteBrand)
}

func SetupCategoryRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	categories.GET("", category_controller.GetCategories)
	categories.GET("/:id", category_controller.GetCategoryByID)
	categories.POST("", category_controller.CreateCategory)
	categories.PATCH("/:id", category_controller.UpdateCategory)
	categories.DELETE("/:id", category_controller.DeleteCategory)

	subcategories := rg.Group("/subcategories")
	subcategories.POST("", category_controller.CreateSubcategory)
	subcategories.PATCH("/:id", category_controller.UpdateSubcategory)
	subcategories.DELETE("/:id", category_controller.DeleteSubcategory)
}

// SetupProductRoutes covers products, their images and the feature and
// specification dictionaries products reference.
func SetupProductRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	products.GET("", product_controller.GetProducts)
	products.GET("/:id", product_controller.GetProductByID)
	products.POST("", product_controller.CreateProduct)
	products.PATCH("/:id", product_controller.UpdateProduct)
	products.DELETE("/:id", product_controller.DeleteProduct)
	products.POST("/:id/images", product_controller.UploadProductImage)
	products.DELETE("/:id/images/:imageId", product_controller.DeleteProductImage)

	features := rg.Group("/features")
	features.GET("", feature_controller.GetFeatures)
	features.POST("", feature_controller.CreateFeature)
	features.PATCH("/:id", feature_controller.UpdateFeature)
	features.DELETE("/:id", feature_controller.DeleteFeature)

	specs := rg.Group("/specifications")
	specs.GET("", specification_controller.GetSpecifications)
	specs.POST("", specification_controller.CreateSpecification)
	specs.PATCH("/:id", specification_controller.UpdateSpecification)
	specs.DELETE("/:id", specification_controller.DeleteSpecification)
}
