package engine

import "sort"

const (
	weightMarketDemand  = 0.4
	weightPeerFrequency = 0.35
	weightRoleSkill     = 0.25

	maxRelevanceScore = 100.0
)

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
	DifficultyExpert       = "expert"
)

const defaultMasteryHours = 400

var masteryHoursByTier = map[string]int{
	DifficultyBeginner:     150,
	DifficultyIntermediate: 300,
	DifficultyAdvanced:     500,
	DifficultyExpert:       800,
}

type TrendingSkill struct {
	Skill       string
	DemandScore float64
}

type RoleSkillRequirement struct {
	Skill         string
	RequiredLevel int
	Importance    int
}

type SkillMeta struct {
	Difficulty    int
	MarketDemand  float64
	SalaryBoost   float64
	Prerequisites []string
	Resources     []string
}

type SkillRecommendation struct {
	Skill              string
	RelevanceScore     float64
	Difficulty         string
	MarketDemand       float64
	SalaryBoost        float64
	PrerequisiteSkills []string
	TimeToMasteryHours int
	LearningResources  []string
}

// ScoreRecommendations accumulates the three weighted signals per candidate
// skill, ranks them and enriches the top topN survivors with metadata. Skills
// the user already holds never enter the score map.
func ScoreRecommendations(
	profile FeatureProfile,
	trending []TrendingSkill,
	peers []FeatureProfile,
	roleReqs []RoleSkillRequirement,
	meta map[string]SkillMeta,
	topN int,
) []SkillRecommendation {
	if topN <= 0 {
		return []SkillRecommendation{}
	}

	scores := map[string]float64{}

	for _, t := range trending {
		if t.Skill == "" || profile.HasSkill(t.Skill) {
			continue
		}
		scores[t.Skill] += t.DemandScore * weightMarketDemand
	}

	if len(peers) > 0 {
		freq := map[string]int{}
		for _, p := range peers {
			for s := range p.Skills {
				if profile.HasSkill(s) {
					continue
				}
				freq[s]++
			}
		}
		peerCount := float64(len(peers))
		for s, n := range freq {
			scores[s] += float64(n) / peerCount * weightPeerFrequency
		}
	}

	for _, r := range roleReqs {
		if r.Skill == "" || profile.HasSkill(r.Skill) {
			continue
		}
		scores[r.Skill] += float64(r.Importance) / 5.0 * weightRoleSkill
	}

	ranked := make([]string, 0, len(scores))
	for s := range scores {
		ranked = append(ranked, s)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if scores[ranked[i]] != scores[ranked[j]] {
			return scores[ranked[i]] > scores[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	out := make([]SkillRecommendation, 0, len(ranked))
	for _, s := range ranked {
		score := scores[s]
		if score > maxRelevanceScore {
			score = maxRelevanceScore
		}
		out = append(out, enrich(s, score, meta[s]))
	}
	return out
}

func enrich(skill string, score float64, m SkillMeta) SkillRecommendation {
	tier := DifficultyTier(m.Difficulty)
	hours := defaultMasteryHours
	if m.Difficulty > 0 {
		hours = MasteryHours(tier)
	}

	prereqs := m.Prerequisites
	if prereqs == nil {
		prereqs = []string{}
	}
	resources := m.Resources
	if resources == nil {
		resources = []string{}
	}

	return SkillRecommendation{
		Skill:              skill,
		RelevanceScore:     score,
		Difficulty:         tier,
		MarketDemand:       m.MarketDemand,
		SalaryBoost:        m.SalaryBoost,
		PrerequisiteSkills: prereqs,
		TimeToMasteryHours: hours,
		LearningResources:  resources,
	}
}

// DifficultyTier maps a raw difficulty value onto the named tiers with fixed
// thresholds. Unknown (zero) values fall into the intermediate tier.
func DifficultyTier(raw int) string {
	if raw <= 0 {
		return DifficultyIntermediate
	}
	switch {
	case raw <= 1:
		return DifficultyBeginner
	case raw <= 2:
		return DifficultyIntermediate
	case raw <= 3:
		return DifficultyAdvanced
	default:
		return DifficultyExpert
	}
}

func MasteryHours(tier string) int {
	if h, ok := masteryHoursByTier[tier]; ok {
		return h
	}
	return defaultMasteryHours
}
