package filter_controller

import (
	"net/http"

	catalog_cache "github.com/PalomoDev/alexika-es-sub001/cache"
	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/facets"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetFilterMetadata godoc
// @Summary Filter sidebar data
// @Description Facet counts and ranges for the current selection. Each facet is counted against the selection minus its own constraint, so picking a brand keeps the other brands visible.
// @Tags Storefront - Filters
// @Produce json
// @Param category query string false "Category slug"
// @Param subcategory query string false "Subcategory slugs, repeated or comma separated (any match)"
// @Param brand query string false "Brand slugs, repeated or comma separated (any match)"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param minWeight query number false "Minimum weight (kg)"
// @Param maxWeight query number false "Maximum weight (kg)"
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters [get]
func GetFilterMetadata(c *gin.Context) {
	sel := facets.ParseSelection(c.Request.URL.Query())

	ctx, cancel := config.WithTimeout()
	defer cancel()

	summary, err := catalog_cache.Summary(ctx, sel)
	if err != nil {
		config.Log.Error("[store.filters] summary failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load filters"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters fetched successfully", models.FilterMetadata{
		Selection: sel,
		Query:     sel.Encode(),
		Summary:   summary,
		PriceText: models.RangeText{
			Min: utils.FormatPrice(summary.Price.Min),
			Max: utils.FormatPrice(summary.Price.Max),
		},
		WeightText: models.RangeText{
			Min: utils.FormatWeight(summary.Weight.Min),
			Max: utils.FormatWeight(summary.Weight.Max),
		},
	}))
}
