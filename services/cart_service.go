package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartLineView is one cart row as the storefront shows it.
type CartLineView struct {
	ProductID    uuid.UUID `json:"product_id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Image        string    `json:"image"`
	Price        float64   `json:"price"`
	PriceText    string    `json:"price_text"`
	Quantity     int       `json:"quantity"`
	Subtotal     float64   `json:"subtotal"`
	SubtotalText string    `json:"subtotal_text"`
	Stock        int       `json:"stock"`
	Available    bool      `json:"available"`
}

type CartTotalsText struct {
	Subtotal     string `json:"subtotal"`
	Tax          string `json:"tax"`
	ShippingCost string `json:"shipping_cost"`
	Total        string `json:"total"`
}

type CartView struct {
	Items      []CartLineView `json:"items"`
	Totals     utils.Totals   `json:"totals"`
	TotalsText CartTotalsText `json:"totals_text"`
}

// Pricing returns the checkout rules from the configuration.
func Pricing() utils.Pricing {
	return utils.Pricing{
		TaxRate:          config.App.TaxRate,
		ShippingFlat:     config.App.ShippingFlat,
		FreeShippingOver: config.App.FreeShippingOver,
	}
}

func totalsText(t utils.Totals) CartTotalsText {
	return CartTotalsText{
		Subtotal:     utils.FormatPrice(t.Subtotal),
		Tax:          utils.FormatPrice(t.Tax),
		ShippingCost: utils.FormatPrice(t.ShippingCost),
		Total:        utils.FormatPrice(t.Total),
	}
}

// GetCart loads the cart with current prices. Lines whose product was
// deactivated stay visible but are left out of the totals.
func GetCart(ctx context.Context, userID uuid.UUID) (CartView, error) {
	var items []models.CartItem
	if err := config.DB.WithContext(ctx).
		Preload("Product.Images").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return CartView{}, err
	}

	view := CartView{Items: make([]CartLineView, 0, len(items))}
	lines := make([]utils.CartLine, 0, len(items))
	for _, it := range items {
		if it.Product == nil {
			continue
		}
		p := it.Product
		available := p.Active && p.Stock >= it.Quantity
		sub := utils.LineSubtotal(p.Price, it.Quantity)
		view.Items = append(view.Items, CartLineView{
			ProductID:    p.ID,
			Name:         p.Name,
			Slug:         p.Slug,
			Image:        p.PrimaryImage(),
			Price:        p.Price,
			PriceText:    utils.FormatPrice(p.Price),
			Quantity:     it.Quantity,
			Subtotal:     sub,
			SubtotalText: utils.FormatPrice(sub),
			Stock:        p.Stock,
			Available:    available,
		})
		if p.Active {
			lines = append(lines, utils.CartLine{Price: p.Price, Quantity: it.Quantity})
		}
	}
	view.Totals = utils.ComputeTotals(lines, Pricing())
	view.TotalsText = totalsText(view.Totals)
	return view, nil
}

func loadBuyableProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	var p models.Product
	err := config.DB.WithContext(ctx).First(&p, "id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductUnavailable
	}
	if err != nil {
		return nil, err
	}
	if !p.Active {
		return nil, ErrProductUnavailable
	}
	return &p, nil
}

// AddToCart adds quantity units, merging with an existing line. The
// resulting quantity may not exceed current stock.
func AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	p, err := loadBuyableProduct(ctx, productID)
	if err != nil {
		return err
	}

	return config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.CartItem
		err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&current).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if current.Quantity+quantity > p.Stock {
			return fmt.Errorf("%w: %s has %d left", ErrInsufficientStock, p.Name, p.Stock)
		}
		return addToCartTx(tx, userID, productID, quantity)
	})
}

// UpdateCartItem sets the quantity of an existing line.
func UpdateCartItem(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	p, err := loadBuyableProduct(ctx, productID)
	if err != nil {
		return err
	}
	if quantity > p.Stock {
		return fmt.Errorf("%w: %s has %d left", ErrInsufficientStock, p.Name, p.Stock)
	}

	res := config.DB.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RemoveCartItem deletes one line.
func RemoveCartItem(ctx context.Context, userID, productID uuid.UUID) error {
	res := config.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClearCart empties the cart.
func ClearCart(ctx context.Context, userID uuid.UUID) error {
	return config.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
