package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "89,95 €", FormatPrice(89.95))
	assert.Equal(t, "4,50 €", FormatPrice(4.5))
	assert.Equal(t, "0,00 €", FormatPrice(0))
}

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "2,5 kg", FormatWeight(2.5))
	assert.Equal(t, "1 kg", FormatWeight(1))
	assert.Equal(t, "0,35 kg", FormatWeight(0.35))
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Tienda Hubba Hubba NX 2":   "tienda-hubba-hubba-nx-2",
		"  Montañismo & Escalada! ": "montanismo-escalada",
		"Sacos de dormir":           "sacos-de-dormir",
		"Ñandú":                     "nandu",
		"---":                       "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}
