package engine

import "sort"

const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

var priorityRank = map[string]int{
	PriorityCritical: 0,
	PriorityHigh:     1,
	PriorityMedium:   2,
	PriorityLow:      3,
}

type SkillGap struct {
	Skill                string
	CurrentLevel         int
	RequiredLevel        int
	Gap                  int
	Priority             string
	EstimatedTimeToLearn int
	RecommendedResources []string
}

// AnalyzeGaps compares the user's proficiency against each role requirement.
// Skills already at or above the required level are omitted entirely. The
// result is ordered critical first; ties keep the requirement scan order.
func AnalyzeGaps(profile FeatureProfile, reqs []RoleSkillRequirement, meta map[string]SkillMeta) []SkillGap {
	out := make([]SkillGap, 0, len(reqs))
	for _, r := range reqs {
		if r.Skill == "" {
			continue
		}
		current := profile.Skills[r.Skill]
		gap := r.RequiredLevel - current
		if gap <= 0 {
			continue
		}

		resources := meta[r.Skill].Resources
		if resources == nil {
			resources = []string{}
		}

		out = append(out, SkillGap{
			Skill:                r.Skill,
			CurrentLevel:         current,
			RequiredLevel:        r.RequiredLevel,
			Gap:                  gap,
			Priority:             gapPriority(gap, r.Importance),
			EstimatedTimeToLearn: MasteryHours(DifficultyTier(r.RequiredLevel)),
			RecommendedResources: resources,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return priorityRank[out[i].Priority] < priorityRank[out[j].Priority]
	})
	return out
}

func gapPriority(gap, importance int) string {
	score := gap * importance
	switch {
	case score >= 12:
		return PriorityCritical
	case score >= 8:
		return PriorityHigh
	case score >= 4:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
