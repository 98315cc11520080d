package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-facilitator-be/internal/i18n"
)

func reportFixture() (Profile, []ScoredResult) {
	profile := Profile{
		Name:     "Ana",
		Company:  "Acme",
		JobTitle: "Ingeniera",
		Phone:    "555-0100",
		Email:    "ana@acme.com",
		Topic:    "Seguridad industrial",
	}
	results := []ScoredResult{
		{Question: "Q1", UserAnswer: "a", CorrectAnswer: "a", Correct: true},
		{Question: "Q2", UserAnswer: "d", CorrectAnswer: "e", Correct: false},
	}
	return profile, results
}

func TestComposeReportSpanishBody(t *testing.T) {
	profile, results := reportFixture()
	report := ComposeReport(profile, results, "fac@acme.com", i18n.LanguageSpanish)

	assert.Equal(t, "fac@acme.com", report.Recipient)
	assert.Equal(t, "respuesta al cuestionario Seguridad industrial", report.Subject)
	assert.Equal(t, 1, report.CorrectCount)
	assert.Equal(t, 2, report.Total)
	require.Len(t, report.Items, 2)

	assert.Contains(t, report.Body, "Datos del Usuario:")
	assert.Contains(t, report.Body, "Nombre: Ana")
	assert.Contains(t, report.Body, "Empresa: Acme")
	assert.Contains(t, report.Body, "Cargo: Ingeniera")
	assert.Contains(t, report.Body, "Teléfono: 555-0100")
	assert.Contains(t, report.Body, "Email: ana@acme.com")
	assert.Contains(t, report.Body, "Tema: Seguridad industrial")
	assert.Contains(t, report.Body, "Resultados del Quiz:")
	assert.Contains(t, report.Body, "Puntaje: 1 / 2")
	assert.Contains(t, report.Body, "Pregunta 1: Q1")
	assert.Contains(t, report.Body, "Resultado: CORRECTO")
	assert.Contains(t, report.Body, "Resultado: INCORRECTO")
}

func TestComposeReportEnglishBody(t *testing.T) {
	profile, results := reportFixture()
	report := ComposeReport(profile, results, "fac@acme.com", i18n.LanguageEnglish)

	assert.Equal(t, "quiz results for Seguridad industrial", report.Subject)
	assert.Contains(t, report.Body, "User Details:")
	assert.Contains(t, report.Body, "Score: 1 / 2")
	assert.Contains(t, report.Body, "Result: CORRECT")
	assert.Contains(t, report.Body, "Result: INCORRECT")
}

func TestComposeReportDeterministic(t *testing.T) {
	profile, results := reportFixture()

	first := ComposeReport(profile, results, "fac@acme.com", i18n.LanguageSpanish)
	second := ComposeReport(profile, results, "fac@acme.com", i18n.LanguageSpanish)

	assert.Equal(t, first.Body, second.Body, "identical inputs must produce a byte-identical body")
	assert.Equal(t, first, second)
}

func TestComposeReportEmptyResults(t *testing.T) {
	profile, _ := reportFixture()
	report := ComposeReport(profile, nil, "fac@acme.com", i18n.LanguageSpanish)

	assert.Equal(t, 0, report.CorrectCount)
	assert.Equal(t, 0, report.Total)
	assert.Contains(t, report.Body, "Puntaje: 0 / 0")
}
