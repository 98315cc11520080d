package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ai-facilitator-be/internal/entity"
	"ai-facilitator-be/internal/repository/unitofwork"
)

// dbRecorder persists the Q&A trail through the repository layer. It
// implements conversation.Recorder; the machine tolerates failures, so
// each call is a single best-effort insert.
type dbRecorder struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDbRecorder(uowFactory unitofwork.RepositoryFactory) *dbRecorder {
	return &dbRecorder{uowFactory: uowFactory}
}

func (r *dbRecorder) RecordQuestion(ctx context.Context, conversationId uuid.UUID, text string) (uuid.UUID, error) {
	uow := r.uowFactory.NewUnitOfWork(ctx)
	question := &entity.Question{
		Id:             uuid.New(),
		ConversationId: conversationId,
		Text:           text,
		CreatedAt:      time.Now(),
	}
	if err := uow.QuestionRepository().Create(ctx, question); err != nil {
		return uuid.Nil, err
	}
	return question.Id, nil
}

func (r *dbRecorder) RecordAnswer(ctx context.Context, questionId uuid.UUID, text string) error {
	uow := r.uowFactory.NewUnitOfWork(ctx)
	answer := &entity.Answer{
		Id:         uuid.New(),
		QuestionId: questionId,
		Text:       text,
		CreatedAt:  time.Now(),
	}
	return uow.AnswerRepository().Create(ctx, answer)
}

func (r *dbRecorder) RecordFile(ctx context.Context, conversationId uuid.UUID, name string, size int64, mediaType string) error {
	uow := r.uowFactory.NewUnitOfWork(ctx)
	file := &entity.UploadedFile{
		Id:             uuid.New(),
		ConversationId: conversationId,
		Name:           name,
		Size:           size,
		MediaType:      mediaType,
		CreatedAt:      time.Now(),
	}
	return uow.FileRepository().Create(ctx, file)
}
