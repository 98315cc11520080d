package genai

import (
	"context"
	"fmt"

	"ai-facilitator-be/internal/i18n"
	"ai-facilitator-be/pkg/conversation"
)

// ScriptedGenerator returns canned answers and a fixed quiz. It is used by
// the simulation binary and as a stand-in when no API key is configured.
type ScriptedGenerator struct {
	Answers []string
	Quiz    []*conversation.QuizQuestion

	calls int
}

func NewScriptedGenerator() *ScriptedGenerator {
	return &ScriptedGenerator{
		Quiz: []*conversation.QuizQuestion{
			{
				Question:      "¿Cuál es el tema principal del documento?",
				Options:       []string{"Procesos internos", "Historia antigua", "Astronomía"},
				CorrectAnswer: "Procesos internos",
			},
			{
				Question:      "¿Qué sección describe los objetivos?",
				Options:       []string{"Anexo", "Introducción", "Glosario"},
				CorrectAnswer: "Introducción",
			},
			{
				Question:      "¿Quién es responsable del seguimiento?",
				Options:       []string{"El facilitador", "El proveedor", "Nadie"},
				CorrectAnswer: "El facilitador",
			},
			{
				Question:      "¿Con qué frecuencia se revisa el plan?",
				Options:       []string{"Nunca", "Cada año", "Cada mes"},
				CorrectAnswer: "Cada mes",
			},
			{
				Question:      "¿Qué formato tiene el documento?",
				Options:       []string{"PDF", "Hoja de cálculo", "Audio"},
				CorrectAnswer: "PDF",
			},
		},
	}
}

func (g *ScriptedGenerator) GenerateAnswer(
	_ context.Context,
	_ []conversation.Exchange,
	question string,
	_ *conversation.Document,
	_ i18n.Language,
) (string, error) {
	g.calls++
	if len(g.Answers) > 0 {
		return g.Answers[(g.calls-1)%len(g.Answers)], nil
	}
	return fmt.Sprintf("Respuesta simulada #%d a: %s", g.calls, question), nil
}

func (g *ScriptedGenerator) GenerateQuiz(
	_ context.Context,
	doc *conversation.Document,
	_ i18n.Language,
) ([]*conversation.QuizQuestion, error) {
	if doc == nil {
		return nil, fmt.Errorf("quiz generation requires a document")
	}
	return g.Quiz, nil
}
