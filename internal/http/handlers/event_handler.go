package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/partnerlink/backend/internal/http/dto"
	"github.com/partnerlink/backend/internal/middleware"
	"github.com/partnerlink/backend/internal/models"
	"github.com/partnerlink/backend/internal/services"
	"go.uber.org/zap"
)

type EventHandler struct {
	eventService *services.EventService
	log          *zap.Logger
}

func NewEventHandler(eventService *services.EventService, log *zap.Logger) *EventHandler {
	return &EventHandler{eventService: eventService, log: log}
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	if req.Title == "" || req.EventDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "title and event_date are required"})
	}

	event := &models.Event{
		Title:           req.Title,
		Platform:        req.Platform,
		EventDate:       req.EventDate,
		Details:         req.Details,
		RequiresPayment: req.RequiresPayment,
		PaymentAmount:   req.PaymentAmount,
		ImageURLs:       req.ImageURLs,
	}

	userID := middleware.GetUserID(c)
	if err := h.eventService.Create(c.Context(), userID, event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: event})
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid event id"})
	}

	event, err := h.eventService.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "event not found"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: event})
}

func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	events, err := h.eventService.ListMine(c.Context(), userID)
	if err != nil {
		h.log.Error("list events failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: events})
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid event id"})
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	event := &models.Event{
		Title:           req.Title,
		Platform:        req.Platform,
		EventDate:       req.EventDate,
		Details:         req.Details,
		RequiresPayment: req.RequiresPayment,
		PaymentAmount:   req.PaymentAmount,
		ImageURLs:       req.ImageURLs,
		Status:          req.Status,
	}

	userID := middleware.GetUserID(c)
	if err := h.eventService.Update(c.Context(), id, userID, event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	updated, _ := h.eventService.GetByID(c.Context(), id)
	return c.JSON(dto.SuccessResponse{OK: true, Data: updated})
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid event id"})
	}

	userID := middleware.GetUserID(c)
	if err := h.eventService.Delete(c.Context(), id, userID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}
