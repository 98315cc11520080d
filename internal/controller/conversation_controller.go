package controller

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"ai-facilitator-be/internal/dto"
	"ai-facilitator-be/internal/pkg/logger"
	"ai-facilitator-be/internal/pkg/serverutils"
	"ai-facilitator-be/internal/service"
	internalWS "ai-facilitator-be/internal/websocket"
)

// MaxUploadSize caps the grounding document at 4 MiB, checked at the
// boundary so oversized payloads never reach the state machine.
const MaxUploadSize = 4 * 1024 * 1024

var allowedMediaTypes = map[string]bool{
	"application/pdf": true,
	"text/plain":      true,
	"image/png":       true,
	"image/jpeg":      true,
	"image/webp":      true,
}

type IConversationController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	UploadFile(ctx *fiber.Ctx) error
	SelectQuizOption(ctx *fiber.Ctx) error
	AdvanceQuiz(ctx *fiber.Ctx) error
	StartReport(ctx *fiber.Ctx) error
	ShowReport(ctx *fiber.Ctx) error
	SendReport(ctx *fiber.Ctx) error
	SetLanguage(ctx *fiber.Ctx) error
	ServeWs(ctx *fiber.Ctx) error
}

type conversationController struct {
	service service.IConversationService
	hub     *internalWS.Hub
	logger  logger.ILogger
}

func NewConversationController(svc service.IConversationService, hub *internalWS.Hub, log logger.ILogger) IConversationController {
	return &conversationController{
		service: svc,
		hub:     hub,
		logger:  log,
	}
}

func (c *conversationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/conversation/v1")
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Post(":id/message", c.SendMessage)
	h.Post(":id/file", c.UploadFile)
	h.Post(":id/quiz/select", c.SelectQuizOption)
	h.Post(":id/quiz/advance", c.AdvanceQuiz)
	h.Post(":id/report", c.StartReport)
	h.Get(":id/report", c.ShowReport)
	h.Post(":id/report/send", c.SendReport)
	h.Put(":id/language", c.SetLanguage)
	h.Get(":id/ws", c.ServeWs)
}

func (c *conversationController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateConversationRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		if err := serverutils.ValidateRequest(req); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Conversation created", res))
}

func (c *conversationController) Show(ctx *fiber.Ctx) error {
	id, err := c.conversationId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid conversation id"))
	}

	res, err := c.service.Get(ctx.Context(), id)
	if err != nil {
		return c.mapServiceError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Conversation state", res))
}

func (c *conversationController) SendMessage(ctx *fiber.Ctx) error {
	id, err := c.conversationId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid conversation id"))
	}

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.SubmitText(ctx.Context(), id, &req)
	if err != nil {
		return c.mapServiceError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Message accepted", res))
}

func (c *conversationController) UploadFile(ctx *fiber.Ctx) error {
	id, err := c.conversationId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid conversation id"))
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Missing file field"))
	}

	if fileHeader.Size > MaxUploadSize {
		return ctx.Status(fiber.StatusRequestEntityTooLarge).JSON(serverutils.ErrorResponse(413, "File exceeds the 4MB limit"))
	}

	mediaType := fileHeader.Header.Get("Content-Type")
	if !allowedMediaTypes[mediaType] {
		return ctx.Status(fiber.StatusUnsupportedMediaType).JSON(serverutils.ErrorResponse(415, "Unsupported media type"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		return err
	}
	if len(data) > MaxUploadSize {
		return ctx.Status(fiber.StatusRequestEntityTooLarge).JSON(serverutils.ErrorResponse(413, "File exceeds the 4MB limit"))
	}

	res, err := c.service.SubmitFile(ctx.Context(), id, fileHeader.Filename, mediaType, data)
	if err != nil {
		return c.mapServiceError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("File accepted", res))
}

func (c *conversationController) SelectQuizOption(ctx *fiber.Ctx) error {
	id, err := c.conversationId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid conversation id"))
	}

	var req dto.SelectOptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.SelectQuizOption(ctx.Context(), id, &req)
	if err != nil {
		return c.mapServiceError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Option selected", res))
}

func (c *conversationController) AdvanceQuiz(ctx *fiber.Ctx) error {
	id, err := c.conversationId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid conversation id"))
	}

	res, err := c.service.AdvanceQuiz(ctx.Context(), id)
	if err != nil {
		return c.mapServiceError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Quiz advanced", res))
}

func (c *conversationController) StartReport(ctx *fiber.Ctx) error {
	id, err := c.conversationId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid conversation id"))
	}

	res, err := c.service.StartReport(ctx.Context(), id)
	if err != nil {
		return c.mapServiceError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Report flow started", res))
}

func (c *conversationController) ShowReport(ctx *fiber.Ctx) error {
	id, err := c.conversationId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid conversation id"))
	}

	res, err := c.service.GetReport(ctx.Context(), id)
	if err != nil {
		return c.mapServiceError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Report", res))
}

func (c *conversationController) SendReport(ctx *fiber.Ctx) error {
	id, err := c.conversationId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid conversation id"))
	}

	res, err := c.service.SendReport(ctx.Context(), id)
	if err != nil {
		return c.mapServiceError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Report queued", res))
}

func (c *conversationController) SetLanguage(ctx *fiber.Ctx) error {
	id, err := c.conversationId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid conversation id"))
	}

	var req dto.SetLanguageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.SetLanguage(ctx.Context(), id, &req)
	if err != nil {
		return c.mapServiceError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Language updated", res))
}

// ServeWs upgrades the connection and attaches it to the conversation's
// event stream.
func (c *conversationController) ServeWs(ctx *fiber.Ctx) error {
	id, err := c.conversationId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid conversation id"))
	}

	// The conversation must exist before a socket can be attached.
	if _, err := c.service.Get(ctx.Context(), id); err != nil {
		return c.mapServiceError(ctx, err)
	}

	if fiberws.IsWebSocketUpgrade(ctx) {
		return fiberws.New(func(conn *fiberws.Conn) {
			c.logger.Info("ConversationController", "Starting WebSocket session", map[string]interface{}{"conversation_id": id})
			internalWS.ServeWs(c.hub, conn, id)
			c.logger.Info("ConversationController", "WebSocket session ended", map[string]interface{}{"conversation_id": id})
		})(ctx)
	}
	return fiber.ErrUpgradeRequired
}

func (c *conversationController) conversationId(ctx *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(ctx.Params("id"))
}

func (c *conversationController) mapServiceError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrConversationNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	if errors.Is(err, service.ErrReportNotReady) {
		return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
	}
	// conversation.ErrBusy / ErrWrongStage fall through to the error
	// handler middleware which maps them to 409 / 422.
	return err
}
