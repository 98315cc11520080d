package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-facilitator-be/internal/entity"
	"ai-facilitator-be/internal/repository/specification"
	"ai-facilitator-be/internal/repository/unitofwork"
	"ai-facilitator-be/pkg/database"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.QuestionRepository())
	assert.NotNil(t, uow.AnswerRepository())
	assert.NotNil(t, uow.FileRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	ctx := context.Background()
	conversationId := uuid.New()

	t.Run("Question and Answer round trip", func(t *testing.T) {
		question := &entity.Question{
			Id:             uuid.New(),
			ConversationId: conversationId,
			Text:           "integration test question",
		}
		require.NoError(t, uow.QuestionRepository().Create(ctx, question))
		defer uow.QuestionRepository().Delete(ctx, question.Id)

		answer := &entity.Answer{
			Id:         uuid.New(),
			QuestionId: question.Id,
			Text:       "integration test answer",
		}
		require.NoError(t, uow.AnswerRepository().Create(ctx, answer))
		defer uow.AnswerRepository().Delete(ctx, answer.Id)

		found, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: question.Id})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "integration test question", found.Text)

		answers, err := uow.AnswerRepository().FindAll(ctx,
			specification.ByQuestionID{QuestionID: question.Id},
			specification.OrderBy{Field: "created_at"},
		)
		require.NoError(t, err)
		require.Len(t, answers, 1)
		assert.Equal(t, "integration test answer", answers[0].Text)
	})

	t.Run("File record round trip", func(t *testing.T) {
		file := &entity.UploadedFile{
			Id:             uuid.New(),
			ConversationId: conversationId,
			Name:           "manual.pdf",
			Size:           1234,
			MediaType:      "application/pdf",
		}
		require.NoError(t, uow.FileRepository().Create(ctx, file))
		defer uow.FileRepository().Delete(ctx, file.Id)

		count, err := uow.FileRepository().Count(ctx, specification.ByConversationID{ConversationID: conversationId})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
