package product_controller

import (
	"net/http"
	"strings"

	catalog_cache "github.com/PalomoDev/alexika-es-sub001/cache"
	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/facets"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products with filters
// @Description Active products narrowed by the facet selection (category, activities, brands, price and weight ranges), an optional name search and sorting.
// @Tags Storefront - Products
// @Produce json
// @Param category query string false "Category slug"
// @Param subcategory query string false "Subcategory slugs, repeated or comma separated (any match)"
// @Param brand query string false "Brand slugs, repeated or comma separated (any match)"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param minWeight query number false "Minimum weight (kg)"
// @Param maxWeight query number false "Maximum weight (kg)"
// @Param q query string false "Name contains"
// @Param sortBy query string false "price | name | newest" default(newest)
// @Param sortOrder query string false "asc | desc" default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse{data=[]models.ProductCard,meta=models.Pagination}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	var query models.ProductListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid query", err.Error()))
		return
	}
	sel := facets.ParseSelection(c.Request.URL.Query())

	ctx, cancel := config.WithTimeout()
	defer cancel()

	engine, err := catalog_cache.Engine(ctx)
	if err != nil {
		config.Log.Error("[store.products] catalog load failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load products"))
		return
	}

	filtered := engine.Filter(sel)
	q := strings.ToLower(strings.TrimSpace(query.Q))
	matched := make([]facets.Product, 0, len(filtered))
	for _, p := range filtered {
		if matchesQuery(p, q) {
			matched = append(matched, p)
		}
	}
	sortProducts(matched, query.SortBy, query.SortOrder)

	cards, err := buildCards(ctx, engine, pageOf(matched, query.Page, query.Limit))
	if err != nil {
		config.Log.Error("[store.products] card load failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load products"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", cards,
		models.NewPagination(query.Page, query.Limit, int64(len(matched)))))
}
