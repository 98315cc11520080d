package bootstrap

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"ai-facilitator-be/internal/config"
	"ai-facilitator-be/internal/controller"
	"ai-facilitator-be/internal/pkg/logger"
	"ai-facilitator-be/internal/pkg/mailer"
	"ai-facilitator-be/internal/repository/memory"
	"ai-facilitator-be/internal/repository/unitofwork"
	"ai-facilitator-be/internal/service"
	"ai-facilitator-be/internal/websocket"
	"ai-facilitator-be/pkg/conversation"
	"ai-facilitator-be/pkg/genai"
)

type Container struct {
	// Controllers
	ConversationController controller.IConversationController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub
}

// NewContainer wires the application. db may be nil: the conversation
// flow keeps working, recording is simply disabled.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Generators
	var answers conversation.AnswerGenerator
	var quizzes conversation.QuizGenerator
	if cfg.Keys.GoogleGemini != "" {
		gemini := genai.NewGeminiClient(cfg.Keys.GoogleGemini)
		answers, quizzes = gemini, gemini
		log.Printf("[INFO] Using generator: GEMINI")
	} else {
		scripted := genai.NewScriptedGenerator()
		answers, quizzes = scripted, scripted
		log.Printf("[WARN] GOOGLE_GEMINI_API_KEY not set, using scripted generator")
	}

	// 4. Recorder (null object when no database is configured)
	var recorder conversation.Recorder = conversation.NoopRecorder{}
	if db != nil {
		uowFactory := unitofwork.NewRepositoryFactory(db)
		recorder = service.NewDbRecorder(uowFactory)
	} else {
		log.Printf("[WARN] No database connection, conversation recording disabled")
	}

	// 5. WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/conversation.log")
	wsHub := websocket.NewHub(wsLogger)
	go wsHub.Run()

	// 6. Messaging Services
	publisherService := service.NewPublisherService(cfg.Keys.ReportTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.ReportTopic,
		emailService,
	)

	// 7. Conversation Storage & Service
	conversationRepo := memory.NewConversationRepository()
	conversationService := service.NewConversationService(
		conversationRepo,
		answers,
		quizzes,
		recorder,
		publisherService,
		wsHub,
		sysLogger,
		conversation.Config{
			QuizThreshold:     cfg.Conversation.QuizThreshold,
			InactivityTimeout: cfg.Conversation.InactivityTimeout,
			PacingDelay:       cfg.Conversation.PacingDelay,
		},
	)

	return &Container{
		ConversationController: controller.NewConversationController(conversationService, wsHub, sysLogger),
		ConsumerService:        consumerService,
		WebSocketHub:           wsHub,
	}
}
