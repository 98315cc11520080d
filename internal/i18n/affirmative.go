package i18n

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Phrases a user may type to accept sending the report. Matched after
// case folding and diacritic removal, so "Sí" and "si" are equivalent.
var affirmativePhrases = map[string]struct{}{
	"si":           {},
	"yes":          {},
	"claro":        {},
	"por supuesto": {},
	"ok":           {},
	"okay":         {},
}

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases, trims and strips combining marks from s.
func Fold(s string) string {
	folded, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// IsAffirmative reports whether text is a recognized "yes" phrase.
func IsAffirmative(text string) bool {
	_, ok := affirmativePhrases[Fold(text)]
	return ok
}
