package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/mindmeal/mindmeal-cli/internal/api/presenters"
	"github.com/mindmeal/mindmeal-cli/internal/model"
	"github.com/mindmeal/mindmeal-cli/internal/service"
)

type TrackerHandler struct {
	app       *service.App
	validator *validator.Validate
}

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=1000"`
}

type WaterResponse struct {
	Glasses int `json:"glasses"`
	Goal    int `json:"goal"`
}

func NewTrackerHandler(app *service.App, validator *validator.Validate) *TrackerHandler {
	return &TrackerHandler{app: app, validator: validator}
}

func (h *TrackerHandler) GetWater(c *fiber.Ctx) error {
	return h.water(c, h.app.Water.Glasses())
}

func (h *TrackerHandler) AddWater(c *fiber.Ctx) error {
	n, err := h.app.Water.Add(c.UserContext())
	if err != nil {
		return presenters.FailResponse(c, MessageFailedWater, err)
	}
	return h.water(c, n)
}

func (h *TrackerHandler) RemoveWater(c *fiber.Ctx) error {
	n, err := h.app.Water.Remove(c.UserContext())
	if err != nil {
		return presenters.FailResponse(c, MessageFailedWater, err)
	}
	return h.water(c, n)
}

func (h *TrackerHandler) water(c *fiber.Ctx, glasses int) error {
	return presenters.SuccessResponse(c, WaterResponse{Glasses: glasses, Goal: h.app.Water.Goal()}, fiber.StatusOK, MessageSuccessWater)
}

func (h *TrackerHandler) Ask(c *fiber.Ctx) error {
	req := new(ChatRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, MessageFailedChat, err)
	}
	reply, err := h.app.Chat.Ask(c.UserContext(), req.Message)
	if err != nil {
		return presenters.FailResponse(c, MessageFailedChat, err)
	}
	return presenters.SuccessResponse(c, reply, fiber.StatusOK, MessageSuccessChat)
}

func (h *TrackerHandler) ChatHistory(c *fiber.Ctx) error {
	history := h.app.Chat.History()
	if history == nil {
		history = []model.ChatMessage{}
	}
	return presenters.SuccessResponse(c, history, fiber.StatusOK, MessageSuccessChatLog)
}

func (h *TrackerHandler) ClearChat(c *fiber.Ctx) error {
	if err := h.app.Chat.Clear(c.UserContext()); err != nil {
		return presenters.FailResponse(c, MessageFailedChatClear, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, MessageSuccessChatClear)
}

// Export streams the export document in ?format= (json or yaml).
func (h *TrackerHandler) Export(c *fiber.Ctx) error {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, MessageFailedExport, err)
	}
	body, err := service.EncodeExport(h.app.ExportDataSnapshot(), format)
	if err != nil {
		return presenters.FailResponse(c, MessageFailedExport, err)
	}
	contentType := fiber.MIMEApplicationJSONCharsetUTF8
	if format == service.ExportYAML {
		contentType = "application/yaml"
	}
	c.Attachment(h.app.DefaultExportFilename(format))
	c.Set(fiber.HeaderContentType, contentType)
	return c.Status(fiber.StatusOK).Send(body)
}
