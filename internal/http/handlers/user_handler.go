package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/partnerlink/backend/internal/http/dto"
	"github.com/partnerlink/backend/internal/middleware"
	"github.com/partnerlink/backend/internal/models"
	"github.com/partnerlink/backend/internal/repositories"
	"go.uber.org/zap"
)

type UserHandler struct {
	userRepo *repositories.UserRepo
	log      *zap.Logger
}

func NewUserHandler(userRepo *repositories.UserRepo, log *zap.Logger) *UserHandler {
	return &UserHandler{userRepo: userRepo, log: log}
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	userID := middleware.GetUserID(c)
	user, err := h.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "user not found"})
	}

	if req.Industry != "" && !validIndustry(req.Industry) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "unknown industry"})
	}

	user.FullName = req.FullName
	user.CompanyName = req.CompanyName
	user.Industry = req.Industry
	user.CustomIndustry = req.CustomIndustry
	user.CareerExperience = req.CareerExperience
	user.Location = req.Location
	user.SocialMediaPlatform = req.SocialMediaPlatform
	user.SocialMediaHandle = req.SocialMediaHandle
	user.Bio = req.Bio
	user.Goals = req.Goals
	user.ProfilePhotoURL = req.ProfilePhotoURL
	user.IsProfileComplete = req.FullName != "" && req.Industry != "" && req.Location != ""

	if err := h.userRepo.UpdateProfile(c.Context(), user); err != nil {
		h.log.Error("failed to update profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: user})
}

// DiscoverPartners lists users with completed profiles, excluding the caller.
func (h *UserHandler) DiscoverPartners(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	users, err := h.userRepo.ListDiscoverable(c.Context(), userID)
	if err != nil {
		h.log.Error("failed to list partners", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: users})
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid user id"})
	}

	user, err := h.userRepo.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "user not found"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: user})
}

func validIndustry(industry string) bool {
	for _, v := range models.Industries {
		if v == industry {
			return true
		}
	}
	return false
}
