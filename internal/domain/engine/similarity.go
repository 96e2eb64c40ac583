package engine

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

const (
	weightSkillOverlap   = 0.5
	weightExperience     = 0.3
	weightRoleMatch      = 0.2
	experienceSmoothness = 5.0
)

type SimilarityScore struct {
	PeerID uuid.UUID
	Score  float64
}

// Similarity blends skill overlap, experience proximity and target-role match
// into a single score in [0,1].
func Similarity(a, b FeatureProfile) float64 {
	overlap := jaccard(a.Skills, b.Skills)
	proximity := math.Exp(-math.Abs(a.YearsOfExperience-b.YearsOfExperience) / experienceSmoothness)
	roleMatch := 0.0
	if a.TargetRole != "" && a.TargetRole == b.TargetRole {
		roleMatch = 1.0
	}
	return weightSkillOverlap*overlap + weightExperience*proximity + weightRoleMatch*roleMatch
}

// RankPeers scores every peer against self and returns the top limit entries,
// highest first. Ties keep the original scan order. Self is never scored; the
// caller is expected to have excluded it already, but it is filtered again
// here as a guard.
func RankPeers(self FeatureProfile, peers []FeatureProfile, limit int) []SimilarityScore {
	if limit <= 0 {
		return []SimilarityScore{}
	}

	scores := make([]SimilarityScore, 0, len(peers))
	for _, p := range peers {
		if p.UserID == self.UserID {
			continue
		}
		scores = append(scores, SimilarityScore{PeerID: p.UserID, Score: Similarity(self, p)})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	if len(scores) > limit {
		scores = scores[:limit]
	}
	return scores
}

func jaccard(a, b map[string]int) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for s := range a {
		if _, ok := b[s]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
