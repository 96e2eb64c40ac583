package usecase

import (
	"context"
	"log"

	"career-compass/internal/domain/engine"

	"github.com/google/uuid"
)

// collectProfiles extracts features for each candidate, discarding failures
// instead of aborting the batch. Similarity is a best-effort ranking; a peer
// whose profile cannot be built is simply not a peer. The scan stops early on
// context cancellation.
func collectProfiles(
	ctx context.Context,
	extractor FeatureExtractor,
	candidateIDs []uuid.UUID,
	exclude uuid.UUID,
	logger *log.Logger,
) []engine.FeatureProfile {
	out := make([]engine.FeatureProfile, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		if ctx.Err() != nil {
			break
		}
		if id == uuid.Nil || id == exclude {
			continue
		}
		p, err := extractor.ExtractFeatures(ctx, id)
		if err != nil {
			if logger != nil {
				logger.Printf("[Engine] peer skipped user_id=%s err=%v", id, err)
			}
			continue
		}
		out = append(out, p)
	}
	return out
}
