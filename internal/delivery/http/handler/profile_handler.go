package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/profile")
	grp.Get("/", h.GetProfile)
	grp.Put("/", h.UpdateProfile)
}

type profileRequest struct {
	TargetRole string   `json:"target_role"`
	Industries []string `json:"industries"`
}

func (h *ProfileHandler) GetProfile(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapEngineError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ProfileResponse{
		UserID:     p.UserID,
		TargetRole: p.TargetRole,
		Industries: p.Industries,
	})
}

func (h *ProfileHandler) UpdateProfile(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req profileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.UpdateProfile(c.Context(), userID, usecase.ProfileInput{
		TargetRole: req.TargetRole,
		Industries: req.Industries,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return mapEngineError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ProfileResponse{
		UserID:     p.UserID,
		TargetRole: p.TargetRole,
		Industries: p.Industries,
	})
}
