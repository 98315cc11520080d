package conversation

import (
	"context"

	"ai-facilitator-be/internal/i18n"

	"github.com/google/uuid"
)

// AnswerGenerator produces a document-grounded reply to a user question.
// Must be safe to call with an empty history.
type AnswerGenerator interface {
	GenerateAnswer(ctx context.Context, history []Exchange, question string, doc *Document, lang i18n.Language) (string, error)
}

// QuizGenerator produces an ordered list of quiz questions grounded in
// the document. An empty list is treated as a failure by the machine.
type QuizGenerator interface {
	GenerateQuiz(ctx context.Context, doc *Document, lang i18n.Language) ([]*QuizQuestion, error)
}

// Recorder is the best-effort persistence capability. Failures are
// swallowed by the machine: they are logged but never block or roll
// back conversation progress.
type Recorder interface {
	RecordQuestion(ctx context.Context, conversationId uuid.UUID, text string) (uuid.UUID, error)
	RecordAnswer(ctx context.Context, questionId uuid.UUID, text string) error
	RecordFile(ctx context.Context, conversationId uuid.UUID, name string, size int64, mediaType string) error
}

// NoopRecorder is the null-object Recorder used when no store is
// configured. The machine is fully functional with it.
type NoopRecorder struct{}

func (NoopRecorder) RecordQuestion(context.Context, uuid.UUID, string) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (NoopRecorder) RecordAnswer(context.Context, uuid.UUID, string) error { return nil }

func (NoopRecorder) RecordFile(context.Context, uuid.UUID, string, int64, string) error { return nil }
