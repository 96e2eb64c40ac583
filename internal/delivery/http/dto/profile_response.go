package dto

import "github.com/google/uuid"

type ProfileResponse struct {
	UserID     uuid.UUID `json:"user_id"`
	TargetRole string    `json:"target_role"`
	Industries []string  `json:"industries"`
}
