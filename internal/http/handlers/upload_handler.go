package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/partnerlink/backend/internal/http/dto"
	"github.com/partnerlink/backend/internal/middleware"
	"github.com/partnerlink/backend/internal/storage"
	"go.uber.org/zap"
)

type UploadHandler struct {
	uploader *storage.Uploader
	log      *zap.Logger
}

func NewUploadHandler(uploader *storage.Uploader, log *zap.Logger) *UploadHandler {
	return &UploadHandler{uploader: uploader, log: log}
}

// PresignUpload hands out a short-lived PUT URL so images go straight to
// object storage instead of through the API.
func (h *UploadHandler) PresignUpload(c *fiber.Ctx) error {
	var req dto.PresignUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	userID := middleware.GetUserID(c)
	presigned, err := h.uploader.PresignUpload(c.Context(), userID, req.Kind, req.Filename, req.ContentType)
	if err != nil {
		h.log.Warn("presign upload failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: presigned})
}
