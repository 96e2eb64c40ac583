package handler

import (
	"errors"
	"strconv"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/engine"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// CareerHandler exposes the career intelligence engine to authenticated users.
type CareerHandler struct {
	recommendations usecase.SkillRecommendationUsecase
	gaps            usecase.SkillGapUsecase
	predictions     usecase.CareerPredictionUsecase
	similarity      usecase.SimilarityUsecase
}

func NewCareerHandler(
	recommendations usecase.SkillRecommendationUsecase,
	gaps usecase.SkillGapUsecase,
	predictions usecase.CareerPredictionUsecase,
	similarity usecase.SimilarityUsecase,
) *CareerHandler {
	return &CareerHandler{
		recommendations: recommendations,
		gaps:            gaps,
		predictions:     predictions,
		similarity:      similarity,
	}
}

func (h *CareerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/career")
	grp.Get("/recommendations", h.GetRecommendations)
	grp.Get("/skill-gaps", h.GetSkillGaps)
	grp.Get("/prediction", h.GetPrediction)
	grp.Get("/peers", h.GetPeers)
}

func (h *CareerHandler) GetRecommendations(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := queryInt(c, "limit", 10)

	recs, err := h.recommendations.RecommendSkills(c.Context(), userID, limit)
	if err != nil {
		return mapEngineError(err)
	}

	out := make([]dto.SkillRecommendationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, dto.SkillRecommendationResponse{
			Skill:              r.Skill,
			RelevanceScore:     r.RelevanceScore,
			Difficulty:         r.Difficulty,
			MarketDemand:       r.MarketDemand,
			SalaryBoost:        r.SalaryBoost,
			PrerequisiteSkills: r.PrerequisiteSkills,
			TimeToMasteryHours: r.TimeToMasteryHours,
			LearningResources:  r.LearningResources,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *CareerHandler) GetSkillGaps(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	gaps, err := h.gaps.CalculateSkillGaps(c.Context(), userID, c.Query("target_role"))
	if err != nil {
		return mapEngineError(err)
	}

	out := make([]dto.SkillGapResponse, 0, len(gaps))
	for _, g := range gaps {
		out = append(out, dto.SkillGapResponse{
			Skill:                g.Skill,
			CurrentLevel:         g.CurrentLevel,
			RequiredLevel:        g.RequiredLevel,
			Gap:                  g.Gap,
			Priority:             g.Priority,
			EstimatedTimeToLearn: g.EstimatedTimeToLearn,
			RecommendedResources: g.RecommendedResources,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *CareerHandler) GetPrediction(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	pred, err := h.predictions.PredictCareerPath(c.Context(), userID)
	if err != nil {
		return mapEngineError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toPredictionResponse(pred))
}

func (h *CareerHandler) GetPeers(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := queryInt(c, "limit", 10)

	peers, err := h.similarity.FindSimilarUsers(c.Context(), userID, limit)
	if err != nil {
		return mapEngineError(err)
	}

	out := make([]dto.PeerResponse, 0, len(peers))
	for _, p := range peers {
		out = append(out, dto.PeerResponse{PeerID: p.PeerID, Score: p.Score})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func toPredictionResponse(pred engine.CareerPrediction) dto.CareerPredictionResponse {
	roles := make([]dto.PredictedRoleResponse, 0, len(pred.PredictedRoles))
	for _, r := range pred.PredictedRoles {
		roles = append(roles, dto.PredictedRoleResponse{
			Role:            r.Role,
			Probability:     r.Probability,
			AvgYears:        r.AvgYears,
			TransitionCount: r.TransitionCount,
		})
	}

	path := make([]dto.CareerStepResponse, 0, len(pred.CareerPath))
	for _, s := range pred.CareerPath {
		path = append(path, dto.CareerStepResponse{
			Step:          s.Step,
			Role:          s.Role,
			DurationYears: s.DurationYears,
			SkillsToLearn: s.SkillsToLearn,
			Salary:        s.Salary,
		})
	}

	return dto.CareerPredictionResponse{
		UserID:          pred.UserID,
		CurrentRole:     pred.CurrentRole,
		PredictedRoles:  roles,
		CareerPath:      path,
		ConfidenceScore: pred.ConfidenceScore,
	}
}

func queryInt(c fiber.Ctx, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func mapEngineError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
