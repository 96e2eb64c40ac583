package dto

import "github.com/google/uuid"

type PredictedRoleResponse struct {
	Role            string  `json:"role"`
	Probability     float64 `json:"probability"`
	AvgYears        float64 `json:"avg_years"`
	TransitionCount int     `json:"transition_count"`
}

type CareerStepResponse struct {
	Step          int      `json:"step"`
	Role          string   `json:"role"`
	DurationYears int      `json:"duration_years"`
	SkillsToLearn []string `json:"skills_to_learn"`
	Salary        float64  `json:"salary"`
}

type CareerPredictionResponse struct {
	UserID          uuid.UUID               `json:"user_id"`
	CurrentRole     string                  `json:"current_role"`
	PredictedRoles  []PredictedRoleResponse `json:"predicted_roles"`
	CareerPath      []CareerStepResponse    `json:"career_path"`
	ConfidenceScore int                     `json:"confidence_score"`
}
