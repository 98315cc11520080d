package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"ai-facilitator-be/internal/i18n"
	"ai-facilitator-be/pkg/conversation"
)

type GeminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type GeminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *GeminiInlineData `json:"inlineData,omitempty"`
}

type GeminiContent struct {
	Parts []*GeminiPart `json:"parts"`
	Role  string        `json:"role,omitempty"`
}

type GeminiGenerationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type GeminiRequest struct {
	Contents          []*GeminiContent        `json:"contents"`
	SystemInstruction *GeminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GeminiGenerationConfig `json:"generationConfig,omitempty"`
}

type GeminiCandidate struct {
	Content *GeminiContent `json:"content"`
}

type GeminiResponse struct {
	Candidates []*GeminiCandidate `json:"candidates"`
}

const (
	RoleUser  = "user"
	RoleModel = "model"

	defaultModel = "gemini-2.5-flash"
)

// quizResponseSchema forces the model to emit the quiz as structured JSON:
// an array of objects each carrying a question, exactly three options and
// the correct answer.
var quizResponseSchema = json.RawMessage(`{
	"type": "ARRAY",
	"items": {
		"type": "OBJECT",
		"properties": {
			"question": {"type": "STRING"},
			"options": {"type": "ARRAY", "items": {"type": "STRING"}, "minItems": 3, "maxItems": 3},
			"correctAnswer": {"type": "STRING"}
		},
		"required": ["question", "options", "correctAnswer"]
	},
	"minItems": 5,
	"maxItems": 10
}`)

// GeminiClient talks to the generativelanguage REST API. It implements both
// conversation.AnswerGenerator and conversation.QuizGenerator.
type GeminiClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey:     apiKey,
		model:      defaultModel,
		httpClient: &http.Client{},
	}
}

func (c *GeminiClient) GenerateAnswer(
	ctx context.Context,
	history []conversation.Exchange,
	question string,
	doc *conversation.Document,
	lang i18n.Language,
) (string, error) {
	contents := make([]*GeminiContent, 0, len(history)+2)

	if doc != nil {
		contents = append(contents, &GeminiContent{
			Role: RoleUser,
			Parts: []*GeminiPart{
				{InlineData: &GeminiInlineData{
					MimeType: doc.MediaType,
					Data:     base64.StdEncoding.EncodeToString(doc.Data),
				}},
				{Text: answerDocPreamble(lang)},
			},
		})
	}

	for i := range history {
		role := RoleUser
		if history[i].Role == conversation.RoleAssistant {
			role = RoleModel
		}
		contents = append(contents, &GeminiContent{
			Parts: []*GeminiPart{{Text: history[i].Text}},
			Role:  role,
		})
	}

	contents = append(contents, &GeminiContent{
		Parts: []*GeminiPart{{Text: question}},
		Role:  RoleUser,
	})

	payload := GeminiRequest{
		Contents: contents,
		SystemInstruction: &GeminiContent{
			Parts: []*GeminiPart{{Text: answerSystemInstruction(lang)}},
		},
	}

	return c.generateContent(ctx, payload)
}

func (c *GeminiClient) GenerateQuiz(
	ctx context.Context,
	doc *conversation.Document,
	lang i18n.Language,
) ([]*conversation.QuizQuestion, error) {
	if doc == nil {
		return nil, fmt.Errorf("quiz generation requires a document")
	}

	payload := GeminiRequest{
		Contents: []*GeminiContent{
			{
				Role: RoleUser,
				Parts: []*GeminiPart{
					{InlineData: &GeminiInlineData{
						MimeType: doc.MediaType,
						Data:     base64.StdEncoding.EncodeToString(doc.Data),
					}},
					{Text: quizPrompt(lang)},
				},
			},
		},
		GenerationConfig: &GeminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   quizResponseSchema,
		},
	}

	raw, err := c.generateContent(ctx, payload)
	if err != nil {
		return nil, err
	}

	// Strip markdown fences in case the model wraps the JSON anyway.
	rawBytes := bytes.TrimSpace([]byte(raw))
	rawBytes = bytes.TrimPrefix(rawBytes, []byte("```json"))
	rawBytes = bytes.TrimPrefix(rawBytes, []byte("```"))
	rawBytes = bytes.TrimSuffix(rawBytes, []byte("```"))
	rawBytes = bytes.TrimSpace(rawBytes)

	var items []struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correctAnswer"`
	}
	if err := json.Unmarshal(rawBytes, &items); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w | raw: %s", err, string(rawBytes))
	}

	questions := make([]*conversation.QuizQuestion, 0, len(items))
	for _, item := range items {
		if item.Question == "" || len(item.Options) != 3 || item.CorrectAnswer == "" {
			continue
		}
		questions = append(questions, &conversation.QuizQuestion{
			Question:      item.Question,
			Options:       item.Options,
			CorrectAnswer: item.CorrectAnswer,
		})
	}
	return questions, nil
}

func (c *GeminiClient) generateContent(ctx context.Context, payload GeminiRequest) (string, error) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent",
		c.model,
	)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}

	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes GeminiResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", err
	}

	if len(geminiRes.Candidates) == 0 ||
		geminiRes.Candidates[0].Content == nil ||
		len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty candidates in response body %s", string(resBody))
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}

func answerSystemInstruction(lang i18n.Language) string {
	if lang == i18n.LanguageEnglish {
		return "You are a helpful facilitation assistant. Answer the user's questions " +
			"grounded strictly in the attached document when one is provided. " +
			"Keep answers concise and respond in English."
	}
	return "Eres un asistente de facilitación. Responde las preguntas del usuario " +
		"basándote estrictamente en el documento adjunto cuando exista. " +
		"Sé conciso y responde en español."
}

func answerDocPreamble(lang i18n.Language) string {
	if lang == i18n.LanguageEnglish {
		return "This is the reference document for our session."
	}
	return "Este es el documento de referencia de nuestra sesión."
}

func quizPrompt(lang i18n.Language) string {
	if lang == i18n.LanguageEnglish {
		return "Based on the attached document, create a multiple-choice quiz " +
			"with between 5 and 10 questions. Each question must have exactly 3 options " +
			"and the correct answer must match one of them verbatim. Write everything in English."
	}
	return "A partir del documento adjunto, crea un quiz de opción múltiple " +
		"con entre 5 y 10 preguntas. Cada pregunta debe tener exactamente 3 opciones " +
		"y la respuesta correcta debe coincidir textualmente con una de ellas. Escribe todo en español."
}
