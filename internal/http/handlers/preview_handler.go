package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/partnerlink/backend/internal/http/dto"
	"github.com/partnerlink/backend/internal/linkpreview"
	"go.uber.org/zap"
)

type PreviewHandler struct {
	fetcher *linkpreview.Fetcher
	log     *zap.Logger
}

func NewPreviewHandler(fetcher *linkpreview.Fetcher, log *zap.Logger) *PreviewHandler {
	return &PreviewHandler{fetcher: fetcher, log: log}
}

// GetPreview fetches OpenGraph metadata for a promoted URL.
func (h *PreviewHandler) GetPreview(c *fiber.Ctx) error {
	rawURL := c.Query("url")
	if rawURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "url query parameter is required"})
	}

	preview, err := h.fetcher.Fetch(c.Context(), rawURL)
	if err != nil {
		h.log.Debug("link preview failed", zap.String("url", rawURL), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: "could not fetch preview"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: preview})
}
