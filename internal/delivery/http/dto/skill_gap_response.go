package dto

type SkillGapResponse struct {
	Skill                string   `json:"skill"`
	CurrentLevel         int      `json:"current_level"`
	RequiredLevel        int      `json:"required_level"`
	Gap                  int      `json:"gap"`
	Priority             string   `json:"priority"`
	EstimatedTimeToLearn int      `json:"estimated_time_to_learn_hours"`
	RecommendedResources []string `json:"recommended_resources"`
}
