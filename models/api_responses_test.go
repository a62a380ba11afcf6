package models_test

import (
	"math"
	"testing"

	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	p := models.NewPagination(2, 10, 42)
	assert.Equal(t, 5, p.TotalPages)
	assert.Equal(t, 42, p.Total)

	assert.Equal(t, 0, models.NewPagination(1, 10, 0).TotalPages)
	assert.Equal(t, 1, models.NewPagination(1, 0, 0).Limit)
}

func TestPageParams_Search(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedCatalog(t, db)

	var names []string
	page := models.PageParams{Page: 1, Limit: 20, Q: "  TIENDA "}
	require.NoError(t, page.Search(db.Model(&models.Product{}), "name", "sku").
		Order("name ASC").Pluck("name", &names).Error)
	assert.Equal(t, []string{"Tienda Familiar", "Tienda Ligera"}, names)

	names = nil
	page.Q = "b-"
	require.NoError(t, page.Search(db.Model(&models.Product{}), "name", "sku").
		Order("sku ASC").Pluck("name", &names).Error)
	assert.Equal(t, []string{"Mochila 40L", "Mochila Oculta"}, names)

	var n int64
	page.Q = ""
	require.NoError(t, page.Search(db.Model(&models.Product{}), "name").Count(&n).Error)
	assert.Equal(t, int64(4), n)
	assert.Equal(t, 0, page.Offset())
}

func TestPageParams_Offset(t *testing.T) {
	assert.Equal(t, 0, models.PageParams{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, models.PageParams{Page: 3, Limit: 20}.Offset())
	assert.Equal(t, 0, models.PageParams{Page: 0, Limit: 20}.Offset())

	huge := models.PageParams{Page: 100000000000000001, Limit: 100}.Offset()
	assert.Equal(t, math.MaxInt32, huge)
}
