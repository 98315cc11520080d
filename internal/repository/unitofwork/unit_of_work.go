package unitofwork

import (
	"context"

	"ai-facilitator-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	QuestionRepository() contract.QuestionRepository
	AnswerRepository() contract.AnswerRepository
	FileRepository() contract.FileRepository
}
