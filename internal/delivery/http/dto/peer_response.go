package dto

import "github.com/google/uuid"

type PeerResponse struct {
	PeerID uuid.UUID `json:"peer_id"`
	Score  float64   `json:"score"`
}
