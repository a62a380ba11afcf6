package product_controller

import (
	"context"
	"sort"
	"strings"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/facets"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"gorm.io/gorm"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func matchesQuery(p facets.Product, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q)
}

func price(p facets.Product) float64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}

// sortProducts orders in place. The snapshot is already newest first, so
// "newest" only needs reversing for ascending order.
func sortProducts(products []facets.Product, sortBy, sortOrder string) {
	asc := strings.EqualFold(sortOrder, "asc")
	switch sortBy {
	case "price":
		sort.SliceStable(products, func(i, j int) bool {
			if asc {
				return price(products[i]) < price(products[j])
			}
			return price(products[i]) > price(products[j])
		})
	case "name":
		sort.SliceStable(products, func(i, j int) bool {
			a, b := strings.ToLower(products[i].Name), strings.ToLower(products[j].Name)
			if asc || sortOrder == "" {
				return a < b
			}
			return a > b
		})
	default:
		if asc {
			for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
				products[i], products[j] = products[j], products[i]
			}
		}
	}
}

// pageOf returns the 1-based page. Pages past the end are empty; the
// bound is checked before multiplying so huge page numbers cannot overflow.
func pageOf(products []facets.Product, page, limit int) []facets.Product {
	if page < 1 || limit < 1 {
		return nil
	}
	pages := len(products) / limit
	if len(products)%limit != 0 {
		pages++
	}
	if page > pages {
		return nil
	}
	start := (page - 1) * limit
	end := start + limit
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

// buildCards loads the rows behind a page of snapshot products (images,
// stock) and renders them in snapshot order.
func buildCards(ctx context.Context, engine *facets.Engine, page []facets.Product) ([]models.ProductCard, error) {
	cards := make([]models.ProductCard, 0, len(page))
	if len(page) == 0 {
		return cards, nil
	}

	ids := make([]string, len(page))
	for i, p := range page {
		ids[i] = p.ID
	}
	var rows []models.Product
	err := config.DB.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.Product, len(rows))
	for i := range rows {
		byID[rows[i].ID.String()] = &rows[i]
	}

	for _, fp := range page {
		row, ok := byID[fp.ID]
		if !ok {
			continue
		}
		card := models.ProductCard{
			ID:        fp.ID,
			Name:      fp.Name,
			Slug:      fp.Slug,
			Price:     price(fp),
			PriceText: utils.FormatPrice(price(fp)),
			Image:     row.PrimaryImage(),
			InStock:   row.Stock > 0,
			Featured:  row.Featured,
		}
		if fp.Brand != nil {
			card.Brand = fp.Brand.Name
		}
		if fp.Category != nil {
			card.Category = fp.Category.Name
		}
		if kg, ok := engine.Weight(fp); ok {
			card.Weight = utils.FormatWeight(kg)
		}
		cards = append(cards, card)
	}
	return cards, nil
}
