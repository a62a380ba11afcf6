package product_controller

import (
	"math"
	"testing"

	"github.com/PalomoDev/alexika-es-sub001/facets"
	"github.com/stretchr/testify/assert"
)

func TestPageOf(t *testing.T) {
	products := make([]facets.Product, 5)
	for i := range products {
		products[i].ID = string(rune('a' + i))
	}
	ids := func(ps []facets.Product) []string {
		out := []string{}
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}

	assert.Equal(t, []string{"a", "b"}, ids(pageOf(products, 1, 2)))
	assert.Equal(t, []string{"e"}, ids(pageOf(products, 3, 2)))
	assert.Empty(t, pageOf(products, 4, 2))
	assert.Empty(t, pageOf(products, 100000000000000001, 100))
	assert.Empty(t, pageOf(products, math.MaxInt, math.MaxInt))
	assert.Empty(t, pageOf(nil, 1, 12))
	assert.Empty(t, pageOf(products, 0, 2))
}
