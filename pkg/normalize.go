package pkg

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Fold normalizes a value for collation-aware comparison: trims, collapses
// inner whitespace, lowercases and strips diacritics, so "São Paulo " and
// "sao paulo" compare equal (the pt/strength-2 collation of the legacy store).
func Fold(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if folded, _, err := transform.String(foldTransformer, s); err == nil {
		s = folded
	}
	return strings.ToLower(s)
}

// FoldKey joins already-folded parts into a composite uniqueness scope.
func FoldKey(parts ...string) string {
	folded := make([]string, len(parts))
	for i, p := range parts {
		folded[i] = Fold(p)
	}
	return strings.Join(folded, "#")
}

// FormatDate renders a timestamp as dd-mm-yyyy, the display format used in
// feedback messages.
func FormatDate(t time.Time) string {
	return t.Format("02-01-2006")
}

// DigitsOnly strips every non-digit rune (phone, CPF/CNPJ and CEP storage form).
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
