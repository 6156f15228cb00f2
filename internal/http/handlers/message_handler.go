package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/partnerlink/backend/internal/http/dto"
	"github.com/partnerlink/backend/internal/middleware"
	"github.com/partnerlink/backend/internal/services"
	"go.uber.org/zap"
)

type MessageHandler struct {
	messageService *services.MessageService
	log            *zap.Logger
}

func NewMessageHandler(messageService *services.MessageService, log *zap.Logger) *MessageHandler {
	return &MessageHandler{messageService: messageService, log: log}
}

func (h *MessageHandler) SendMessage(c *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid recipient id"})
	}

	userID := middleware.GetUserID(c)
	msg, err := h.messageService.Send(c.Context(), userID, recipientID, req.Content)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: msg})
}

func (h *MessageHandler) ListConversations(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	convos, err := h.messageService.Conversations(c.Context(), userID)
	if err != nil {
		h.log.Error("list conversations failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: convos})
}

// GetThread returns a conversation's messages and marks them read.
func (h *MessageHandler) GetThread(c *fiber.Ctx) error {
	conversationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid conversation id"})
	}

	userID := middleware.GetUserID(c)
	messages, err := h.messageService.Thread(c.Context(), conversationID, userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: messages})
}
