package mapper

import (
	"time"

	"ai-facilitator-be/internal/entity"
	"ai-facilitator-be/internal/model"

	"gorm.io/gorm"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

// Question Mappers

func (m *ConversationMapper) QuestionToEntity(q *model.Question) *entity.Question {
	if q == nil {
		return nil
	}

	var deletedAt *time.Time
	if q.DeletedAt.Valid {
		t := q.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !q.UpdatedAt.IsZero() {
		t := q.UpdatedAt
		updatedAt = &t
	}

	return &entity.Question{
		Id:             q.Id,
		ConversationId: q.ConversationId,
		Text:           q.Text,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      q.DeletedAt.Valid,
	}
}

func (m *ConversationMapper) QuestionToModel(q *entity.Question) *model.Question {
	if q == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if q.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *q.DeletedAt, Valid: true}
	} else if q.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if q.UpdatedAt != nil {
		updatedAt = *q.UpdatedAt
	}

	return &model.Question{
		Id:             q.Id,
		ConversationId: q.ConversationId,
		Text:           q.Text,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

// Answer Mappers

func (m *ConversationMapper) AnswerToEntity(a *model.Answer) *entity.Answer {
	if a == nil {
		return nil
	}

	var deletedAt *time.Time
	if a.DeletedAt.Valid {
		t := a.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Answer{
		Id:         a.Id,
		QuestionId: a.QuestionId,
		Text:       a.Text,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
		IsDeleted:  a.DeletedAt.Valid,
	}
}

func (m *ConversationMapper) AnswerToModel(a *entity.Answer) *model.Answer {
	if a == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if a.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *a.DeletedAt, Valid: true}
	} else if a.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.Answer{
		Id:         a.Id,
		QuestionId: a.QuestionId,
		Text:       a.Text,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
	}
}

// File Mappers

func (m *ConversationMapper) FileToEntity(f *model.UploadedFile) *entity.UploadedFile {
	if f == nil {
		return nil
	}

	var deletedAt *time.Time
	if f.DeletedAt.Valid {
		t := f.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !f.UpdatedAt.IsZero() {
		t := f.UpdatedAt
		updatedAt = &t
	}

	return &entity.UploadedFile{
		Id:             f.Id,
		ConversationId: f.ConversationId,
		Name:           f.Name,
		Size:           f.Size,
		MediaType:      f.MediaType,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      f.DeletedAt.Valid,
	}
}

func (m *ConversationMapper) FileToModel(f *entity.UploadedFile) *model.UploadedFile {
	if f == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if f.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *f.DeletedAt, Valid: true}
	} else if f.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if f.UpdatedAt != nil {
		updatedAt = *f.UpdatedAt
	}

	return &model.UploadedFile{
		Id:             f.Id,
		ConversationId: f.ConversationId,
		Name:           f.Name,
		Size:           f.Size,
		MediaType:      f.MediaType,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}
