package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateConversationRequest struct {
	Language string `json:"language" validate:"omitempty,oneof=es en"`
}

type SendMessageRequest struct {
	Text string `json:"text"`
}

type SelectOptionRequest struct {
	Option string `json:"option" validate:"required"`
}

type SetLanguageRequest struct {
	Language string `json:"language" validate:"required,oneof=es en"`
}

type MessageResponse struct {
	Id         uuid.UUID  `json:"id"`
	Role       string     `json:"role"`
	Text       string     `json:"text"`
	CreatedAt  time.Time  `json:"created_at"`
	QuestionId *uuid.UUID `json:"question_id,omitempty"`
}

type ProfileResponse struct {
	Name     string `json:"name"`
	Company  string `json:"company"`
	JobTitle string `json:"job_title"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Topic    string `json:"topic"`
}

type QuizViewResponse struct {
	Index      int      `json:"index"`
	Total      int      `json:"total"`
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Selection  string   `json:"selection,omitempty"`
	CanAdvance bool     `json:"can_advance"`
}

type QuizResultResponse struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Correct       bool   `json:"correct"`
}

type ConversationStateResponse struct {
	Id       uuid.UUID            `json:"id"`
	Stage    string               `json:"stage"`
	Language string               `json:"language"`
	Busy     bool                 `json:"busy"`
	Profile  ProfileResponse      `json:"profile"`
	Messages []MessageResponse    `json:"messages"`
	Quiz     *QuizViewResponse    `json:"quiz,omitempty"`
	Results  []QuizResultResponse `json:"results,omitempty"`
}

type ReportResponse struct {
	Recipient    string `json:"recipient"`
	Subject      string `json:"subject"`
	Body         string `json:"body"`
	CorrectCount int    `json:"correct_count"`
	Total        int    `json:"total"`
}

// PublishSendReportMessage is the payload carried over the internal bus from
// the report endpoint to the mail consumer.
type PublishSendReportMessage struct {
	ConversationId uuid.UUID `json:"conversation_id"`
	Recipient      string    `json:"recipient"`
	Subject        string    `json:"subject"`
	Body           string    `json:"body"`
}
