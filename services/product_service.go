package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrInvalidReference is returned when a product points at a category,
// brand, subcategory, feature or specification that does not exist.
var ErrInvalidReference = errors.New("invalid reference")

// PreloadProduct loads everything a product page or the facet engine needs.
func PreloadProduct(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("Brand").
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, name ASC") }).
		Preload("Features", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Preload("SpecValues.Specification").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") })
}

// LoadProduct returns one fully preloaded product.
func LoadProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var p models.Product
	if err := PreloadProduct(config.DB.WithContext(ctx)).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func checkExists(tx *gorm.DB, model interface{}, ids []uuid.UUID, what string) error {
	if len(ids) == 0 {
		return nil
	}
	unique := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	var n int64
	if err := tx.Model(model).Where("id IN ?", ids).Count(&n).Error; err != nil {
		return err
	}
	if int(n) != len(unique) {
		return fmt.Errorf("%w: unknown %s", ErrInvalidReference, what)
	}
	return nil
}

func idsToModels[T any](ids []uuid.UUID, build func(uuid.UUID) T) []T {
	out := make([]T, len(ids))
	for i, id := range ids {
		out[i] = build(id)
	}
	return out
}

func replaceSpecs(tx *gorm.DB, productID uuid.UUID, specs []models.SpecValueInput) error {
	specIDs := make([]uuid.UUID, len(specs))
	for i, s := range specs {
		specIDs[i] = s.SpecificationID
	}
	if err := checkExists(tx, &models.Specification{}, specIDs, "specification"); err != nil {
		return err
	}
	if err := tx.Where("product_id = ?", productID).Delete(&models.ProductSpecValue{}).Error; err != nil {
		return err
	}
	if len(specs) == 0 {
		return nil
	}
	values := make([]models.ProductSpecValue, len(specs))
	for i, s := range specs {
		values[i] = models.ProductSpecValue{ProductID: productID, SpecificationID: s.SpecificationID, Value: s.Value}
	}
	return tx.Create(&values).Error
}

// CreateProduct inserts a product with its associations.
func CreateProduct(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	p := models.Product{
		Name:        req.Name,
		Slug:        slug,
		SKU:         req.SKU,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Active:      req.Active == nil || *req.Active,
		Featured:    req.Featured,
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
	}

	err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkExists(tx, &models.Category{}, []uuid.UUID{req.CategoryID}, "category"); err != nil {
			return err
		}
		if req.BrandID != nil {
			if err := checkExists(tx, &models.Brand{}, []uuid.UUID{*req.BrandID}, "brand"); err != nil {
				return err
			}
		}
		if err := checkExists(tx, &models.Subcategory{}, req.SubcategoryIDs, "subcategory"); err != nil {
			return err
		}
		if err := checkExists(tx, &models.Feature{}, req.FeatureIDs, "feature"); err != nil {
			return err
		}

		p.Subcategories = idsToModels(req.SubcategoryIDs, func(id uuid.UUID) models.Subcategory { return models.Subcategory{ID: id} })
		p.Features = idsToModels(req.FeatureIDs, func(id uuid.UUID) models.Feature { return models.Feature{ID: id} })
		if err := tx.Omit("Subcategories.*", "Features.*").Create(&p).Error; err != nil {
			return err
		}
		return replaceSpecs(tx, p.ID, req.Specs)
	})
	if err != nil {
		return nil, err
	}

	config.Log.Info("[product.create] created", zap.String("id", p.ID.String()), zap.String("slug", p.Slug))
	return LoadProduct(ctx, p.ID)
}

// UpdateProduct applies a partial update. Association slices replace the
// current set when present.
func UpdateProduct(ctx context.Context, id uuid.UUID, req models.UpdateProductRequest) (*models.Product, error) {
	err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.Product
		if err := tx.First(&p, "id = ?", id).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Slug != nil {
			updates["slug"] = utils.Slugify(*req.Slug)
		}
		if req.SKU != nil {
			updates["sku"] = *req.SKU
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Price != nil {
			updates["price"] = *req.Price
		}
		if req.Stock != nil {
			updates["stock"] = *req.Stock
		}
		if req.Active != nil {
			updates["active"] = *req.Active
		}
		if req.Featured != nil {
			updates["featured"] = *req.Featured
		}
		if req.CategoryID != nil {
			if err := checkExists(tx, &models.Category{}, []uuid.UUID{*req.CategoryID}, "category"); err != nil {
				return err
			}
			updates["category_id"] = *req.CategoryID
		}
		if req.BrandID != nil {
			if *req.BrandID == uuid.Nil {
				updates["brand_id"] = nil
			} else {
				if err := checkExists(tx, &models.Brand{}, []uuid.UUID{*req.BrandID}, "brand"); err != nil {
					return err
				}
				updates["brand_id"] = *req.BrandID
			}
		}
		if len(updates) > 0 {
			if err := tx.Model(&p).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.SubcategoryIDs != nil {
			ids := *req.SubcategoryIDs
			if err := checkExists(tx, &models.Subcategory{}, ids, "subcategory"); err != nil {
				return err
			}
			subs := idsToModels(ids, func(id uuid.UUID) models.Subcategory { return models.Subcategory{ID: id} })
			if err := tx.Model(&p).Omit("Subcategories.*").Association("Subcategories").Replace(subs); err != nil {
				return err
			}
		}
		if req.FeatureIDs != nil {
			ids := *req.FeatureIDs
			if err := checkExists(tx, &models.Feature{}, ids, "feature"); err != nil {
				return err
			}
			feats := idsToModels(ids, func(id uuid.UUID) models.Feature { return models.Feature{ID: id} })
			if err := tx.Model(&p).Omit("Features.*").Association("Features").Replace(feats); err != nil {
				return err
			}
		}
		if req.Specs != nil {
			return replaceSpecs(tx, p.ID, *req.Specs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return LoadProduct(ctx, id)
}

// DeleteProduct removes a product and its dependent rows. Order history
// keeps its own snapshot of name and price.
func DeleteProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, err := LoadProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(p).Association("Subcategories").Clear(); err != nil {
			return err
		}
		if err := tx.Model(p).Association("Features").Clear(); err != nil {
			return err
		}
		for _, m := range []interface{}{&models.ProductSpecValue{}, &models.ProductImage{}, &models.CartItem{}} {
			if err := tx.Where("product_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}

	if store, err := GetImageStore(); err == nil {
		for _, img := range p.Images {
			if img.PublicID == "" {
				continue
			}
			if err := store.DeleteImage(ctx, img.PublicID); err != nil {
				config.Log.Warn("[product.delete] failed to delete hosted image", zap.String("public_id", img.PublicID), zap.Error(err))
			}
		}
	}
	return p, nil
}

// AddProductImage uploads an image and attaches it. The first image, or
// one flagged primary, becomes the primary image.
func AddProductImage(ctx context.Context, productID uuid.UUID, file io.Reader, filename, alt string, primary bool) (*models.ProductImage, error) {
	store, err := GetImageStore()
	if err != nil {
		return nil, err
	}

	var p models.Product
	if err := config.DB.WithContext(ctx).Select("id", "slug").First(&p, "id = ?", productID).Error; err != nil {
		return nil, err
	}

	uploaded, err := store.UploadImage(ctx, file, filename, "alexika/products/"+p.Slug)
	if err != nil {
		return nil, err
	}

	img := models.ProductImage{ProductID: productID, URL: uploaded.URL, PublicID: uploaded.PublicID, Alt: alt}
	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.ProductImage{}).Where("product_id = ?", productID).Count(&count).Error; err != nil {
			return err
		}
		img.Position = int(count)
		img.IsPrimary = primary || count == 0
		if img.IsPrimary && count > 0 {
			if err := tx.Model(&models.ProductImage{}).Where("product_id = ?", productID).Update("is_primary", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&img).Error
	})
	if err != nil {
		if derr := store.DeleteImage(ctx, uploaded.PublicID); derr != nil {
			config.Log.Warn("[product.image] orphaned upload", zap.String("public_id", uploaded.PublicID), zap.Error(derr))
		}
		return nil, err
	}
	return &img, nil
}

// DeleteProductImage removes the image row and the hosted file. If it was
// primary, the next image by position takes over.
func DeleteProductImage(ctx context.Context, productID, imageID uuid.UUID) error {
	var img models.ProductImage
	err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&img, "id = ? AND product_id = ?", imageID, productID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&img).Error; err != nil {
			return err
		}
		if !img.IsPrimary {
			return nil
		}
		var next models.ProductImage
		err := tx.Where("product_id = ?", productID).Order("position ASC").First(&next).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Model(&next).Update("is_primary", true).Error
	})
	if err != nil {
		return err
	}

	if img.PublicID != "" {
		if store, err := GetImageStore(); err == nil {
			if err := store.DeleteImage(ctx, img.PublicID); err != nil {
				config.Log.Warn("[product.image] failed to delete hosted image", zap.String("public_id", img.PublicID), zap.Error(err))
			}
		}
	}
	return nil
}
