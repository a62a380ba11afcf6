package facets

import (
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultWeightKey is the canonical specification key for product weight.
	DefaultWeightKey = "weight"

	legacyWeightNameHint = "peso"
	legacyWeightUnit     = "kg"
)

// Options tunes how the engine reads product specifications.
type Options struct {
	// WeightKey is the specification key that holds a product's weight.
	WeightKey string
	// LegacyWeightMatch also accepts specifications whose name contains
	// "peso" or whose unit is "kg". Catalogs imported before specifications
	// had canonical keys need it.
	LegacyWeightMatch bool
}

// DefaultOptions matches weight on the canonical key only.
func DefaultOptions() Options {
	return Options{WeightKey: DefaultWeightKey}
}

func (o Options) isWeight(s SpecValue) bool {
	key := o.WeightKey
	if key == "" {
		key = DefaultWeightKey
	}
	if strings.EqualFold(s.Key, key) {
		return true
	}
	if !o.LegacyWeightMatch {
		return false
	}
	return strings.Contains(strings.ToLower(s.Name), legacyWeightNameHint) ||
		strings.EqualFold(strings.TrimSpace(s.Unit), legacyWeightUnit)
}

// Weight returns the product's weight, or false when it has none that parses.
func (o Options) Weight(p Product) (float64, bool) {
	for _, s := range p.Specs {
		if !o.isWeight(s) {
			continue
		}
		if w, ok := ParseWeight(s.Value); ok {
			return w, true
		}
	}
	return 0, false
}

// ParseWeight parses a free-form weight such as "2,5 kg" or "850g".
// Anything that is not a finite positive number is reported as absent.
func ParseWeight(raw string) (float64, bool) {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == ',':
			b.WriteRune('.')
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	w, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return 0, false
	}
	return w, true
}
