package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/partnerlink/backend/internal/http/dto"
	"github.com/partnerlink/backend/internal/middleware"
	"github.com/partnerlink/backend/internal/services"
	"go.uber.org/zap"
)

type PartnershipHandler struct {
	partnershipService *services.PartnershipService
	log                *zap.Logger
}

func NewPartnershipHandler(partnershipService *services.PartnershipService, log *zap.Logger) *PartnershipHandler {
	return &PartnershipHandler{partnershipService: partnershipService, log: log}
}

// RequestCampaign submits a partnership request against someone's campaign.
func (h *PartnershipHandler) RequestCampaign(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	var req dto.CampaignRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	userID := middleware.GetUserID(c)
	created, err := h.partnershipService.RequestCampaign(c.Context(), userID, campaignID, req.Content, req.Tags, req.PhotoURL)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: created})
}

func (h *PartnershipHandler) RequestEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid event id"})
	}

	var req dto.EventRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	userID := middleware.GetUserID(c)
	created, err := h.partnershipService.RequestEvent(c.Context(), userID, eventID, req.AgreeToPay)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: created})
}

func (h *PartnershipHandler) ApproveRequest(c *fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request id"})
	}

	userID := middleware.GetUserID(c)
	partnership, err := h.partnershipService.Approve(c.Context(), requestID, userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: partnership})
}

func (h *PartnershipHandler) DenyRequest(c *fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request id"})
	}

	userID := middleware.GetUserID(c)
	if err := h.partnershipService.Deny(c.Context(), requestID, userID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *PartnershipHandler) ListSentRequests(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	requests, err := h.partnershipService.ListSent(c.Context(), userID)
	if err != nil {
		h.log.Error("list sent requests failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: requests})
}

// ListReceivedRequests is the Updates feed: requests against the caller's
// campaigns and events, newest first, with requester identity attached.
func (h *PartnershipHandler) ListReceivedRequests(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	requests, err := h.partnershipService.ListReceived(c.Context(), userID)
	if err != nil {
		h.log.Error("list received requests failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: requests})
}

func (h *PartnershipHandler) ListPartnerships(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	asCreator := c.Query("as") == "creator"

	partnerships, err := h.partnershipService.ListPartnerships(c.Context(), userID, asCreator)
	if err != nil {
		h.log.Error("list partnerships failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: partnerships})
}
