package dto

type SkillRecommendationResponse struct {
	Skill              string   `json:"skill"`
	RelevanceScore     float64  `json:"relevance_score"`
	Difficulty         string   `json:"difficulty"`
	MarketDemand       float64  `json:"market_demand"`
	SalaryBoost        float64  `json:"salary_boost"`
	PrerequisiteSkills []string `json:"prerequisite_skills"`
	TimeToMasteryHours int      `json:"time_to_mastery_hours"`
	LearningResources  []string `json:"learning_resources"`
}
