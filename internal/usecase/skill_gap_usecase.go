package usecase

import (
	"context"
	"log"
	"time"

	"career-compass/internal/domain/engine"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type SkillGapUsecase interface {
	CalculateSkillGaps(ctx context.Context, userID uuid.UUID, targetRole string) ([]engine.SkillGap, error)
}

type SkillGap struct {
	features FeatureExtractor
	market   repository.MarketTrendRepository
	cache    EngineCache

	cacheTTL time.Duration
	logger   *log.Logger
}

func NewSkillGapUsecase(
	features FeatureExtractor,
	market repository.MarketTrendRepository,
	cache EngineCache,
	cacheTTL time.Duration,
	logger *log.Logger,
) *SkillGap {
	if cacheTTL <= 0 {
		cacheTTL = 6 * time.Hour
	}
	return &SkillGap{
		features: features,
		market:   market,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// CalculateSkillGaps compares the user against the resolved target role. An
// explicit targetRole overrides the profile's target role; with neither set
// the "general" requirement set applies. An empty result is a valid outcome,
// not an error.
func (u *SkillGap) CalculateSkillGaps(ctx context.Context, userID uuid.UUID, targetRole string) ([]engine.SkillGap, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	key := EngineCacheKey("skill-gaps", userID, map[string]any{"target_role": normalizeKeyValue(targetRole)})
	return computeOrCache(ctx, u.cache, u.logger, key, u.cacheTTL, func() ([]engine.SkillGap, error) {
		return u.compute(ctx, userID, targetRole)
	})
}

func (u *SkillGap) compute(ctx context.Context, userID uuid.UUID, targetRole string) ([]engine.SkillGap, error) {
	profile, err := u.features.ExtractFeatures(ctx, userID)
	if err != nil {
		return nil, err
	}

	role := targetRole
	if role == "" {
		role = profile.TargetRole
	}
	if role == "" || role == engine.RoleNotSpecified {
		role = generalSegment
	}

	reqRows, err := u.market.RoleRequiredSkills(ctx, role)
	if err != nil {
		return nil, err
	}
	reqs := make([]engine.RoleSkillRequirement, 0, len(reqRows))
	skills := make([]string, 0, len(reqRows))
	for _, r := range reqRows {
		reqs = append(reqs, engine.RoleSkillRequirement{
			Skill:         r.Skill,
			RequiredLevel: r.RequiredLevel,
			Importance:    r.Importance,
		})
		skills = append(skills, r.Skill)
	}

	metaRows, err := u.market.SkillMetadataFor(ctx, skills)
	if err != nil {
		return nil, err
	}
	meta := make(map[string]engine.SkillMeta, len(metaRows))
	for skill, m := range metaRows {
		meta[skill] = engine.SkillMeta{
			Difficulty:    m.Difficulty,
			MarketDemand:  m.MarketDemand,
			SalaryBoost:   m.SalaryBoost,
			Prerequisites: m.Prerequisites,
			Resources:     m.Resources,
		}
	}

	return engine.AnalyzeGaps(profile, reqs, meta), nil
}
