package services

import (
	"context"
	"testing"

	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct_WithAssociations(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	brandID := cat.MSR.ID

	p, err := CreateProduct(context.Background(), models.ProductRequest{
		Name:           "Tienda Hubba Hubba 2",
		SKU:            "MSR-HH2",
		Price:          489.95,
		Stock:          4,
		CategoryID:     cat.Tents.ID,
		BrandID:        &brandID,
		SubcategoryIDs: []uuid.UUID{cat.Trekking.ID, cat.Camping.ID},
		Specs:          []models.SpecValueInput{{SpecificationID: cat.Weight.ID, Value: "1,54 kg"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "tienda-hubba-hubba-2", p.Slug)
	assert.True(t, p.Active)
	require.NotNil(t, p.Category)
	assert.Equal(t, "tents", p.Category.Slug)
	require.NotNil(t, p.Brand)
	assert.Equal(t, "msr", p.Brand.Slug)
	assert.Len(t, p.Subcategories, 2)
	require.Len(t, p.SpecValues, 1)
	assert.Equal(t, "1,54 kg", p.SpecValues[0].Value)
	require.NotNil(t, p.SpecValues[0].Specification)
	assert.Equal(t, "weight", p.SpecValues[0].Specification.Key)
}

func TestCreateProduct_UnknownReference(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)

	_, err := CreateProduct(context.Background(), models.ProductRequest{
		Name: "Sin categoría", SKU: "X-1", CategoryID: uuid.New(),
	})
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = CreateProduct(context.Background(), models.ProductRequest{
		Name: "Sin sub", SKU: "X-2", CategoryID: cat.Tents.ID,
		SubcategoryIDs: []uuid.UUID{cat.Trekking.ID, uuid.New()},
	})
	assert.ErrorIs(t, err, ErrInvalidReference)

	var n int64
	require.NoError(t, db.Model(&models.Product{}).Where("sku IN ?", []string{"X-1", "X-2"}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestUpdateProduct_ReplacesAssociations(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)

	price := 79.0
	subs := []uuid.UUID{cat.Camping.ID}
	specs := []models.SpecValueInput{}
	noBrand := uuid.Nil

	p, err := UpdateProduct(context.Background(), cat.TentLight.ID, models.UpdateProductRequest{
		Price:          &price,
		SubcategoryIDs: &subs,
		Specs:          &specs,
		BrandID:        &noBrand,
	})
	require.NoError(t, err)

	assert.Equal(t, 79.0, p.Price)
	require.Len(t, p.Subcategories, 1)
	assert.Equal(t, "camping", p.Subcategories[0].Slug)
	assert.Empty(t, p.SpecValues)
	assert.Nil(t, p.BrandID)
	assert.Equal(t, "Tienda Ligera", p.Name)

	_, err = UpdateProduct(context.Background(), uuid.New(), models.UpdateProductRequest{Price: &price})
	assert.True(t, IsNotFound(err))
}

func TestDeleteProduct_RemovesCartLines(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	user := testutil.NewCustomer(t, db, "ana@example.com")
	require.NoError(t, AddToCart(context.Background(), user.ID, cat.Pack40.ID, 1))

	deleted, err := DeleteProduct(context.Background(), cat.Pack40.ID)
	require.NoError(t, err)
	assert.Equal(t, "pack-40", deleted.Slug)

	var n int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, db.Model(&models.ProductSpecValue{}).Where("product_id = ?", cat.Pack40.ID).Count(&n).Error)
	assert.Zero(t, n)

	_, err = LoadProduct(context.Background(), cat.Pack40.ID)
	assert.True(t, IsNotFound(err))
}
