package usecase

import (
	"context"
	"log"
	"time"

	"career-compass/internal/domain/engine"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type CareerPredictionUsecase interface {
	PredictCareerPath(ctx context.Context, userID uuid.UUID) (engine.CareerPrediction, error)
}

type CareerPredictionConfig struct {
	PeerCount int
	CacheTTL  time.Duration
}

type CareerPrediction struct {
	features    FeatureExtractor
	similarity  SimilarityUsecase
	transitions repository.TransitionRepository
	market      repository.MarketTrendRepository
	salaries    repository.RoleSalaryRepository
	cache       EngineCache

	peerCount int
	cacheTTL  time.Duration
	logger    *log.Logger
}

func NewCareerPredictionUsecase(
	features FeatureExtractor,
	similarity SimilarityUsecase,
	transitions repository.TransitionRepository,
	market repository.MarketTrendRepository,
	salaries repository.RoleSalaryRepository,
	cache EngineCache,
	cfg CareerPredictionConfig,
	logger *log.Logger,
) *CareerPrediction {
	peerCount := cfg.PeerCount
	if peerCount <= 0 {
		peerCount = 20
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &CareerPrediction{
		features:    features,
		similarity:  similarity,
		transitions: transitions,
		market:      market,
		salaries:    salaries,
		cache:       cache,
		peerCount:   peerCount,
		cacheTTL:    ttl,
		logger:      logger,
	}
}

// PredictCareerPath derives probable next roles from peer transition history
// and assembles the timeline. Predictions are treated as a slow-changing
// analytical snapshot and cached for days.
func (u *CareerPrediction) PredictCareerPath(ctx context.Context, userID uuid.UUID) (engine.CareerPrediction, error) {
	if userID == uuid.Nil {
		return engine.CareerPrediction{}, ErrInvalidInput
	}

	key := EngineCacheKey("career-prediction", userID, nil)
	return computeOrCache(ctx, u.cache, u.logger, key, u.cacheTTL, func() (engine.CareerPrediction, error) {
		return u.compute(ctx, userID)
	})
}

func (u *CareerPrediction) compute(ctx context.Context, userID uuid.UUID) (engine.CareerPrediction, error) {
	profile, err := u.features.ExtractFeatures(ctx, userID)
	if err != nil {
		return engine.CareerPrediction{}, err
	}

	peerIDs := make([]uuid.UUID, 0, u.peerCount)
	peers, err := u.similarity.FindSimilarUsers(ctx, userID, u.peerCount)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Engine] peer ranking unavailable user_id=%s err=%v", userID, err)
		}
	} else {
		for _, p := range peers {
			peerIDs = append(peerIDs, p.PeerID)
		}
	}

	rows, err := u.transitions.FindByUserIDs(ctx, peerIDs)
	if err != nil {
		return engine.CareerPrediction{}, err
	}
	transitions := make([]engine.Transition, 0, len(rows))
	for _, t := range rows {
		transitions = append(transitions, engine.Transition{
			UserID:   t.UserID,
			FromRole: t.FromRole,
			ToRole:   t.ToRole,
			Years:    t.YearsToTransition,
		})
	}

	currentRole := profile.TargetRole
	if currentRole == "" {
		currentRole = engine.RoleNotSpecified
	}

	predicted := engine.AggregateTransitions(currentRole, transitions)

	pathRoles := predicted
	if len(pathRoles) > 4 {
		pathRoles = pathRoles[:4]
	}
	roles := make([]string, 0, len(pathRoles)+1)
	roles = append(roles, currentRole)
	reqsByRole := make(map[string][]engine.RoleSkillRequirement, len(pathRoles))
	for _, p := range pathRoles {
		roles = append(roles, p.Role)
		reqRows, err := u.market.RoleRequiredSkills(ctx, p.Role)
		if err != nil {
			return engine.CareerPrediction{}, err
		}
		reqs := make([]engine.RoleSkillRequirement, 0, len(reqRows))
		for _, r := range reqRows {
			reqs = append(reqs, engine.RoleSkillRequirement{
				Skill:         r.Skill,
				RequiredLevel: r.RequiredLevel,
				Importance:    r.Importance,
			})
		}
		reqsByRole[p.Role] = reqs
	}

	salaryByRole, err := u.salaries.SalariesByRoles(ctx, roles)
	if err != nil {
		return engine.CareerPrediction{}, err
	}

	return engine.BuildPrediction(profile, predicted, reqsByRole, salaryByRole), nil
}
