package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StoreLocale is the language prices and weights are shown in.
var StoreLocale = language.Spanish

func printer() *message.Printer {
	return message.NewPrinter(StoreLocale)
}

// FormatPrice renders an amount in euros: 89.95 -> "89,95 €".
func FormatPrice(amount float64) string {
	return printer().Sprint(number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	)) + " €"
}

// FormatWeight renders kilograms with up to two decimals: 2.5 -> "2,5 kg".
func FormatWeight(kg float64) string {
	return printer().Sprint(number.Decimal(kg, number.MaxFractionDigits(2))) + " kg"
}

// Slugify lowercases s, drops accents and joins words with '-':
// "Tienda Hubba Hubba NX 2" -> "tienda-hubba-hubba-nx-2", "Montañismo" -> "montanismo".
func Slugify(s string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(stripMarks, s)
	if err != nil {
		plain = s
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(plain) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
