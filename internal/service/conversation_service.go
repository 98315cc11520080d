package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"ai-facilitator-be/internal/dto"
	"ai-facilitator-be/internal/i18n"
	"ai-facilitator-be/internal/pkg/logger"
	"ai-facilitator-be/internal/repository/memory"
	"ai-facilitator-be/pkg/conversation"
)

var ErrConversationNotFound = errors.New("conversation not found")

var ErrReportNotReady = errors.New("report is not ready to send")

// EventBroadcaster fans a conversation event out to its live websocket
// clients. The zero implementation drops events.
type EventBroadcaster interface {
	Broadcast(conversationId string, payload []byte)
}

type IConversationService interface {
	Create(ctx context.Context, request *dto.CreateConversationRequest) (*dto.ConversationStateResponse, error)
	Get(ctx context.Context, conversationId uuid.UUID) (*dto.ConversationStateResponse, error)
	SubmitText(ctx context.Context, conversationId uuid.UUID, request *dto.SendMessageRequest) (*dto.ConversationStateResponse, error)
	SubmitFile(ctx context.Context, conversationId uuid.UUID, name, mediaType string, data []byte) (*dto.ConversationStateResponse, error)
	SelectQuizOption(ctx context.Context, conversationId uuid.UUID, request *dto.SelectOptionRequest) (*dto.ConversationStateResponse, error)
	AdvanceQuiz(ctx context.Context, conversationId uuid.UUID) (*dto.ConversationStateResponse, error)
	StartReport(ctx context.Context, conversationId uuid.UUID) (*dto.ConversationStateResponse, error)
	GetReport(ctx context.Context, conversationId uuid.UUID) (*dto.ReportResponse, error)
	SendReport(ctx context.Context, conversationId uuid.UUID) (*dto.ReportResponse, error)
	SetLanguage(ctx context.Context, conversationId uuid.UUID, request *dto.SetLanguageRequest) (*dto.ConversationStateResponse, error)
}

type conversationService struct {
	conversationRepo *memory.ConversationRepository
	answers          conversation.AnswerGenerator
	quizzes          conversation.QuizGenerator
	recorder         conversation.Recorder
	publisherService IPublisherService
	broadcaster      EventBroadcaster
	logger           logger.ILogger
	machineConfig    conversation.Config
}

func NewConversationService(
	conversationRepo *memory.ConversationRepository,
	answers conversation.AnswerGenerator,
	quizzes conversation.QuizGenerator,
	recorder conversation.Recorder,
	publisherService IPublisherService,
	broadcaster EventBroadcaster,
	log logger.ILogger,
	machineConfig conversation.Config,
) IConversationService {
	return &conversationService{
		conversationRepo: conversationRepo,
		answers:          answers,
		quizzes:          quizzes,
		recorder:         recorder,
		publisherService: publisherService,
		broadcaster:      broadcaster,
		logger:           log,
		machineConfig:    machineConfig,
	}
}

func (s *conversationService) Create(ctx context.Context, request *dto.CreateConversationRequest) (*dto.ConversationStateResponse, error) {
	lang, _ := i18n.ParseLanguage(request.Language)
	id := uuid.New()

	machine := conversation.NewMachine(id, lang, conversation.Deps{
		Answers:  s.answers,
		Quizzes:  s.quizzes,
		Recorder: s.recorder,
		Logger:   s.logger,
		Listener: s.forwardEvent,
	}, s.machineConfig)

	s.conversationRepo.Save(machine)

	s.logger.Info("ConversationService", "conversation created", map[string]interface{}{
		"conversation_id": id.String(),
		"language":        string(lang),
	})

	return stateToResponse(id, machine.Snapshot()), nil
}

func (s *conversationService) Get(ctx context.Context, conversationId uuid.UUID) (*dto.ConversationStateResponse, error) {
	machine, err := s.machine(conversationId)
	if err != nil {
		return nil, err
	}
	return stateToResponse(conversationId, machine.Snapshot()), nil
}

func (s *conversationService) SubmitText(ctx context.Context, conversationId uuid.UUID, request *dto.SendMessageRequest) (*dto.ConversationStateResponse, error) {
	machine, err := s.machine(conversationId)
	if err != nil {
		return nil, err
	}
	if err := machine.SubmitText(ctx, request.Text); err != nil {
		return nil, err
	}
	return stateToResponse(conversationId, machine.Snapshot()), nil
}

func (s *conversationService) SubmitFile(ctx context.Context, conversationId uuid.UUID, name, mediaType string, data []byte) (*dto.ConversationStateResponse, error) {
	machine, err := s.machine(conversationId)
	if err != nil {
		return nil, err
	}
	doc := &conversation.Document{
		Name:      name,
		MediaType: mediaType,
		Data:      data,
	}
	if err := machine.SubmitFile(ctx, doc); err != nil {
		return nil, err
	}
	return stateToResponse(conversationId, machine.Snapshot()), nil
}

func (s *conversationService) SelectQuizOption(ctx context.Context, conversationId uuid.UUID, request *dto.SelectOptionRequest) (*dto.ConversationStateResponse, error) {
	machine, err := s.machine(conversationId)
	if err != nil {
		return nil, err
	}
	machine.SelectQuizOption(request.Option)
	return stateToResponse(conversationId, machine.Snapshot()), nil
}

func (s *conversationService) AdvanceQuiz(ctx context.Context, conversationId uuid.UUID) (*dto.ConversationStateResponse, error) {
	machine, err := s.machine(conversationId)
	if err != nil {
		return nil, err
	}
	machine.AdvanceQuiz(ctx)
	return stateToResponse(conversationId, machine.Snapshot()), nil
}

func (s *conversationService) StartReport(ctx context.Context, conversationId uuid.UUID) (*dto.ConversationStateResponse, error) {
	machine, err := s.machine(conversationId)
	if err != nil {
		return nil, err
	}
	if err := machine.StartReport(ctx); err != nil {
		return nil, err
	}
	return stateToResponse(conversationId, machine.Snapshot()), nil
}

func (s *conversationService) GetReport(ctx context.Context, conversationId uuid.UUID) (*dto.ReportResponse, error) {
	machine, err := s.machine(conversationId)
	if err != nil {
		return nil, err
	}
	report, ok := machine.Report()
	if !ok {
		return nil, ErrReportNotReady
	}
	return reportToResponse(report), nil
}

func (s *conversationService) SendReport(ctx context.Context, conversationId uuid.UUID) (*dto.ReportResponse, error) {
	machine, err := s.machine(conversationId)
	if err != nil {
		return nil, err
	}
	report, ok := machine.Report()
	if !ok {
		return nil, ErrReportNotReady
	}

	payload := dto.PublishSendReportMessage{
		ConversationId: conversationId,
		Recipient:      report.Recipient,
		Subject:        report.Subject,
		Body:           report.Body,
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, payloadJson); err != nil {
		return nil, err
	}

	s.logger.Info("ConversationService", "report queued for delivery", map[string]interface{}{
		"conversation_id": conversationId.String(),
		"recipient":       report.Recipient,
	})

	return reportToResponse(report), nil
}

func (s *conversationService) SetLanguage(ctx context.Context, conversationId uuid.UUID, request *dto.SetLanguageRequest) (*dto.ConversationStateResponse, error) {
	machine, err := s.machine(conversationId)
	if err != nil {
		return nil, err
	}
	lang, _ := i18n.ParseLanguage(request.Language)
	machine.SetLanguage(lang)
	return stateToResponse(conversationId, machine.Snapshot()), nil
}

func (s *conversationService) machine(conversationId uuid.UUID) (*conversation.Machine, error) {
	machine, found := s.conversationRepo.Get(conversationId.String())
	if !found {
		return nil, ErrConversationNotFound
	}
	return machine, nil
}

// forwardEvent runs under the machine lock; it only marshals and hands
// off to the hub, which buffers per client.
func (s *conversationService) forwardEvent(ev conversation.Event) {
	if s.broadcaster == nil {
		return
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	s.broadcaster.Broadcast(ev.ConversationId.String(), payload)
}

func stateToResponse(id uuid.UUID, state conversation.State) *dto.ConversationStateResponse {
	messages := make([]dto.MessageResponse, len(state.Timeline))
	for i, entry := range state.Timeline {
		messages[i] = dto.MessageResponse{
			Id:         entry.Id,
			Role:       string(entry.Role),
			Text:       entry.Text,
			CreatedAt:  entry.CreatedAt,
			QuestionId: entry.QuestionId,
		}
	}

	response := &dto.ConversationStateResponse{
		Id:       id,
		Stage:    state.Stage.String(),
		Language: string(state.Language),
		Busy:     state.Busy,
		Profile: dto.ProfileResponse{
			Name:     state.Profile.Name,
			Company:  state.Profile.Company,
			JobTitle: state.Profile.JobTitle,
			Phone:    state.Profile.Phone,
			Email:    state.Profile.Email,
			Topic:    state.Profile.Topic,
		},
		Messages: messages,
	}

	if state.Quiz != nil {
		response.Quiz = &dto.QuizViewResponse{
			Index:      state.Quiz.Index,
			Total:      state.Quiz.Total,
			Question:   state.Quiz.Question,
			Options:    state.Quiz.Options,
			Selection:  state.Quiz.Selection,
			CanAdvance: state.Quiz.CanAdvance,
		}
	}

	if len(state.Results) > 0 {
		response.Results = make([]dto.QuizResultResponse, len(state.Results))
		for i, r := range state.Results {
			response.Results[i] = dto.QuizResultResponse{
				Question:      r.Question,
				UserAnswer:    r.UserAnswer,
				CorrectAnswer: r.CorrectAnswer,
				Correct:       r.Correct,
			}
		}
	}

	return response
}

func reportToResponse(report conversation.Report) *dto.ReportResponse {
	return &dto.ReportResponse{
		Recipient:    report.Recipient,
		Subject:      report.Subject,
		Body:         report.Body,
		CorrectCount: report.CorrectCount,
		Total:        report.Total,
	}
}
