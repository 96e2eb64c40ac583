package usecase

import (
	"context"
	"log"

	"career-compass/internal/domain/engine"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type SimilarityUsecase interface {
	FindSimilarUsers(ctx context.Context, userID uuid.UUID, limit int) ([]engine.SimilarityScore, error)
	FindSimilarProfiles(ctx context.Context, userID uuid.UUID, limit int) ([]PeerProfile, error)
}

type PeerProfile struct {
	Profile engine.FeatureProfile
	Score   float64
}

type Similarity struct {
	features FeatureExtractor
	users    repository.UserRepository

	populationCap int
	logger        *log.Logger
}

func NewSimilarityUsecase(features FeatureExtractor, users repository.UserRepository, populationCap int, logger *log.Logger) *Similarity {
	if populationCap <= 0 {
		populationCap = 200
	}
	return &Similarity{
		features:      features,
		users:         users,
		populationCap: populationCap,
		logger:        logger,
	}
}

func (u *Similarity) FindSimilarUsers(ctx context.Context, userID uuid.UUID, limit int) ([]engine.SimilarityScore, error) {
	peers, err := u.FindSimilarProfiles(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	out := make([]engine.SimilarityScore, 0, len(peers))
	for _, p := range peers {
		out = append(out, engine.SimilarityScore{PeerID: p.Profile.UserID, Score: p.Score})
	}
	return out, nil
}

// FindSimilarProfiles ranks the bounded candidate population against the
// requesting user. Candidates whose extraction fails are skipped silently.
func (u *Similarity) FindSimilarProfiles(ctx context.Context, userID uuid.UUID, limit int) ([]PeerProfile, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	if limit <= 0 {
		limit = 10
	}

	self, err := u.features.ExtractFeatures(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidateIDs, err := u.users.ListUserIDs(ctx, u.populationCap)
	if err != nil {
		return nil, err
	}

	profiles := collectProfiles(ctx, u.features, candidateIDs, userID, u.logger)
	ranked := engine.RankPeers(self, profiles, limit)

	byID := make(map[uuid.UUID]engine.FeatureProfile, len(profiles))
	for _, p := range profiles {
		byID[p.UserID] = p
	}

	out := make([]PeerProfile, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, PeerProfile{Profile: byID[s.PeerID], Score: s.Score})
	}
	return out, nil
}
