package testutil

import (
	"testing"

	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Catalog is a small outdoor catalog:
//
//	tent-light  tents  msr     trekking    89.00  1,2 kg  stock 5
//	tent-family tents  msr     camping    320.00  6,5 kg  stock 2
//	pack-40     bags   deuter  trekking   120.00  1,6 kg  stock 10
//	pack-hidden bags   deuter             60.00           inactive
type Catalog struct {
	Tents, Bags           models.Category
	MSR, Deuter           models.Brand
	Trekking, Camping     models.Subcategory
	Weight                models.Specification
	TentLight, TentFamily models.Product
	Pack40, PackHidden    models.Product
}

func SeedCatalog(t *testing.T, db *gorm.DB) *Catalog {
	t.Helper()
	c := &Catalog{}

	c.Tents = models.Category{Name: "Tiendas", Slug: "tents", SortOrder: 1, Active: true}
	c.Bags = models.Category{Name: "Mochilas", Slug: "bags", SortOrder: 2, Active: true}
	require.NoError(t, db.Create(&c.Tents).Error)
	require.NoError(t, db.Create(&c.Bags).Error)

	c.MSR = models.Brand{Name: "MSR", Slug: "msr", SortOrder: 1, Active: true}
	c.Deuter = models.Brand{Name: "Deuter", Slug: "deuter", SortOrder: 2, Active: true}
	require.NoError(t, db.Create(&c.MSR).Error)
	require.NoError(t, db.Create(&c.Deuter).Error)

	c.Trekking = models.Subcategory{CategoryID: c.Tents.ID, Name: "Trekking", Slug: "trekking", IsActivity: true, SortOrder: 1, Active: true}
	c.Camping = models.Subcategory{CategoryID: c.Tents.ID, Name: "Camping", Slug: "camping", IsActivity: true, SortOrder: 2, Active: true}
	require.NoError(t, db.Create(&c.Trekking).Error)
	require.NoError(t, db.Create(&c.Camping).Error)

	c.Weight = models.Specification{Key: "weight", Name: "Peso", Unit: "kg"}
	require.NoError(t, db.Create(&c.Weight).Error)

	c.TentLight = product(t, db, "Tienda Ligera", "tent-light", "T-1", 89, 5, true, c.Tents, c.MSR, c.Weight, "1,2 kg", c.Trekking)
	c.TentFamily = product(t, db, "Tienda Familiar", "tent-family", "T-2", 320, 2, true, c.Tents, c.MSR, c.Weight, "6,5 kg", c.Camping)
	c.Pack40 = product(t, db, "Mochila 40L", "pack-40", "B-1", 120, 10, true, c.Bags, c.Deuter, c.Weight, "1,6 kg", c.Trekking)
	c.PackHidden = product(t, db, "Mochila Oculta", "pack-hidden", "B-2", 60, 3, false, c.Bags, c.Deuter, c.Weight, "")

	return c
}

func product(t *testing.T, db *gorm.DB, name, slug, sku string, price float64, stock int, active bool,
	cat models.Category, brand models.Brand, weight models.Specification, weightValue string, subs ...models.Subcategory) models.Product {
	t.Helper()

	brandID := brand.ID
	p := models.Product{
		Name:       name,
		Slug:       slug,
		SKU:        sku,
		Price:      price,
		Stock:      stock,
		Active:     active,
		CategoryID: cat.ID,
		BrandID:    &brandID,
	}
	require.NoError(t, db.Create(&p).Error)

	if len(subs) > 0 {
		require.NoError(t, db.Model(&p).Association("Subcategories").Append(&subs))
	}
	if weightValue != "" {
		require.NoError(t, db.Create(&models.ProductSpecValue{
			ProductID:       p.ID,
			SpecificationID: weight.ID,
			Value:           weightValue,
		}).Error)
	}
	return p
}

// NewCustomer stores an active local customer.
func NewCustomer(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	u := models.User{Email: email, Name: "Cliente " + email}
	require.NoError(t, db.Create(&u).Error)
	return u
}
