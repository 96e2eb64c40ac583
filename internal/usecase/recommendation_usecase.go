package usecase

import (
	"context"
	"log"
	"time"

	"career-compass/internal/domain/engine"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultRecommendationCount = 10
	maxRecommendationCount     = 50
	trendingScanLimit          = 20

	generalSegment = "general"
)

type SkillRecommendationUsecase interface {
	RecommendSkills(ctx context.Context, userID uuid.UUID, topN int) ([]engine.SkillRecommendation, error)
}

type SkillRecommendationConfig struct {
	PeerCount int
	CacheTTL  time.Duration
}

type SkillRecommendation struct {
	features   FeatureExtractor
	similarity SimilarityUsecase
	market     repository.MarketTrendRepository
	cache      EngineCache

	peerCount int
	cacheTTL  time.Duration
	logger    *log.Logger
}

func NewSkillRecommendationUsecase(
	features FeatureExtractor,
	similarity SimilarityUsecase,
	market repository.MarketTrendRepository,
	cache EngineCache,
	cfg SkillRecommendationConfig,
	logger *log.Logger,
) *SkillRecommendation {
	peerCount := cfg.PeerCount
	if peerCount <= 0 {
		peerCount = 5
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SkillRecommendation{
		features:   features,
		similarity: similarity,
		market:     market,
		cache:      cache,
		peerCount:  peerCount,
		cacheTTL:   ttl,
		logger:     logger,
	}
}

// RecommendSkills blends market demand, peer frequency and role requirements
// into a ranked list. Results are cached per (user, topN) with a long TTL and
// are not invalidated when the user's skills change; staleness up to the TTL
// is an accepted trade-off.
func (u *SkillRecommendation) RecommendSkills(ctx context.Context, userID uuid.UUID, topN int) ([]engine.SkillRecommendation, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	if topN <= 0 {
		topN = defaultRecommendationCount
	}
	if topN > maxRecommendationCount {
		topN = maxRecommendationCount
	}

	key := EngineCacheKey("recommendations", userID, map[string]any{"top_n": topN})
	return computeOrCache(ctx, u.cache, u.logger, key, u.cacheTTL, func() ([]engine.SkillRecommendation, error) {
		return u.compute(ctx, userID, topN)
	})
}

func (u *SkillRecommendation) compute(ctx context.Context, userID uuid.UUID, topN int) ([]engine.SkillRecommendation, error) {
	profile, err := u.features.ExtractFeatures(ctx, userID)
	if err != nil {
		return nil, err
	}

	industry := generalSegment
	if len(profile.Industries) > 0 {
		industry = profile.Industries[0]
	}

	trendingRows, err := u.market.TrendingSkills(ctx, industry, trendingScanLimit)
	if err != nil {
		return nil, err
	}
	trending := make([]engine.TrendingSkill, 0, len(trendingRows))
	for _, t := range trendingRows {
		trending = append(trending, engine.TrendingSkill{Skill: t.Skill, DemandScore: t.DemandScore})
	}

	// Peer signal degrades to nothing when ranking fails; recommendations
	// still carry the market and role signals.
	peerProfiles := make([]engine.FeatureProfile, 0, u.peerCount)
	peers, err := u.similarity.FindSimilarProfiles(ctx, userID, u.peerCount)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Engine] peer signal unavailable user_id=%s err=%v", userID, err)
		}
	} else {
		for _, p := range peers {
			peerProfiles = append(peerProfiles, p.Profile)
		}
	}

	role := profile.TargetRole
	if role == engine.RoleNotSpecified {
		role = generalSegment
	}
	reqRows, err := u.market.RoleRequiredSkills(ctx, role)
	if err != nil {
		return nil, err
	}
	reqs := make([]engine.RoleSkillRequirement, 0, len(reqRows))
	for _, r := range reqRows {
		reqs = append(reqs, engine.RoleSkillRequirement{
			Skill:         r.Skill,
			RequiredLevel: r.RequiredLevel,
			Importance:    r.Importance,
		})
	}

	meta, err := u.skillMetadata(ctx, profile, trending, peerProfiles, reqs)
	if err != nil {
		return nil, err
	}

	return engine.ScoreRecommendations(profile, trending, peerProfiles, reqs, meta, topN), nil
}

func (u *SkillRecommendation) skillMetadata(
	ctx context.Context,
	profile engine.FeatureProfile,
	trending []engine.TrendingSkill,
	peers []engine.FeatureProfile,
	reqs []engine.RoleSkillRequirement,
) (map[string]engine.SkillMeta, error) {
	seen := map[string]struct{}{}
	candidates := make([]string, 0)
	add := func(skill string) {
		if skill == "" || profile.HasSkill(skill) {
			return
		}
		if _, ok := seen[skill]; ok {
			return
		}
		seen[skill] = struct{}{}
		candidates = append(candidates, skill)
	}

	for _, t := range trending {
		add(t.Skill)
	}
	for _, p := range peers {
		for s := range p.Skills {
			add(s)
		}
	}
	for _, r := range reqs {
		add(r.Skill)
	}

	rows, err := u.market.SkillMetadataFor(ctx, candidates)
	if err != nil {
		return nil, err
	}

	meta := make(map[string]engine.SkillMeta, len(rows))
	for skill, m := range rows {
		meta[skill] = engine.SkillMeta{
			Difficulty:    m.Difficulty,
			MarketDemand:  m.MarketDemand,
			SalaryBoost:   m.SalaryBoost,
			Prerequisites: m.Prerequisites,
			Resources:     m.Resources,
		}
	}
	return meta, nil
}
