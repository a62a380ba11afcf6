package product_controller

import (
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProductBySlug godoc
// @Summary Get a storefront product
// @Description Product page data: images, specifications, features and activities. Hidden products are not found.
// @Tags Storefront - Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.ApiResponse{data=models.ProductDetail}
// @Failure 404 {object} models.ApiResponse
// @Router /store/products/{slug} [get]
func GetStorefrontProductBySlug(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var p models.Product
	err := services.PreloadProduct(config.DB.WithContext(ctx)).
		Where("slug = ? AND active = ?", c.Param("slug"), true).
		First(&p).Error
	if err == nil && (p.Category == nil || !p.Category.Active || (p.Brand != nil && !p.Brand.Active)) {
		err = services.ErrProductUnavailable
	}
	if err != nil {
		if services.IsNotFound(err) || err == services.ErrProductUnavailable {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		status, msg := utils.DBErrorStatus(err, "Product")
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	subs := make([]models.Subcategory, 0, len(p.Subcategories))
	for _, s := range p.Subcategories {
		if s.Active {
			subs = append(subs, s)
		}
	}
	specs := make([]models.ProductSpecView, 0, len(p.SpecValues))
	for _, sv := range p.SpecValues {
		if sv.Specification == nil {
			continue
		}
		specs = append(specs, models.ProductSpecView{
			Key:   sv.Specification.Key,
			Name:  sv.Specification.Name,
			Value: sv.Value,
			Unit:  sv.Specification.Unit,
		})
	}
	features := p.Features
	if features == nil {
		features = []models.Feature{}
	}
	images := p.Images
	if images == nil {
		images = []models.ProductImage{}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", models.ProductDetail{
		ID:            p.ID.String(),
		Name:          p.Name,
		Slug:          p.Slug,
		SKU:           p.SKU,
		Description:   p.Description,
		Price:         p.Price,
		PriceText:     utils.FormatPrice(p.Price),
		Stock:         p.Stock,
		InStock:       p.Stock > 0,
		Category:      p.Category,
		Brand:         p.Brand,
		Subcategories: subs,
		Features:      features,
		Specs:         specs,
		Images:        images,
	}))
}
