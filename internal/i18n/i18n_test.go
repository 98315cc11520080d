package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  Language
		known bool
	}{
		{"es", LanguageSpanish, true},
		{"ES", LanguageSpanish, true},
		{"es-MX", LanguageSpanish, true},
		{"en", LanguageEnglish, true},
		{"en-US", LanguageEnglish, true},
		{"", LanguageSpanish, true},
		{"fr", DefaultLanguage, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, known := ParseLanguage(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, known)
		})
	}
}

func TestTSubstitutesPlaceholders(t *testing.T) {
	got := T(LanguageSpanish, KeyAskCompany, map[string]string{"name": "Ana"})
	assert.Contains(t, got, "Ana")
	assert.NotContains(t, got, "{name}")

	got = T(LanguageSpanish, KeyQuizCompleted, map[string]string{"correct": "3", "total": "5"})
	assert.Contains(t, got, "3")
	assert.Contains(t, got, "5")
}

func TestTUnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "no_such_key", T(LanguageSpanish, Key("no_such_key"), nil))
}

func TestTUnknownLanguageFallsBack(t *testing.T) {
	assert.Equal(t, T(DefaultLanguage, KeyWelcome, nil), T(Language("fr"), KeyWelcome, nil))
}

func TestTEveryKeyPresentInBothLanguages(t *testing.T) {
	for lang, table := range translations {
		for key := range translations[DefaultLanguage] {
			_, ok := table[key]
			assert.True(t, ok, "language %s missing key %s", lang, key)
		}
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "si", Fold("  Sí  "))
	assert.Equal(t, "por supuesto", Fold("POR SUPUESTO"))
	assert.Equal(t, "arbol", Fold("Árbol"))
}

func TestIsAffirmative(t *testing.T) {
	affirmative := []string{"si", "sí", "Sí", "SÍ", "yes", "Claro", "por supuesto", "OK", "okay", "  sí  "}
	for _, input := range affirmative {
		assert.True(t, IsAffirmative(input), "expected %q to be affirmative", input)
	}

	negative := []string{"no", "nope", "no, gracias", "tal vez", "sí claro", ""}
	for _, input := range negative {
		assert.False(t, IsAffirmative(input), "expected %q to be negative", input)
	}
}
