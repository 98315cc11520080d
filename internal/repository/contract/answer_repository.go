package contract

import (
	"context"

	"ai-facilitator-be/internal/entity"
	"ai-facilitator-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AnswerRepository interface {
	Create(ctx context.Context, answer *entity.Answer) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByQuestionId(ctx context.Context, questionId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Answer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Answer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
