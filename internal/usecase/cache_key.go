package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

type engineCacheKeyInput struct {
	Operation string         `json:"operation"`
	UserID    uuid.UUID      `json:"user_id"`
	Params    map[string]any `json:"params,omitempty"`
}

func normalizeKeyValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// EngineCacheKey derives a deterministic key from (operation, userId, params).
// The user id stays in plaintext so a user's entries can be swept by pattern.
func EngineCacheKey(operation string, userID uuid.UUID, params map[string]any) string {
	in := engineCacheKeyInput{
		Operation: operation,
		UserID:    userID,
		Params:    params,
	}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "career:" + operation + ":" + userID.String() + ":" + hex.EncodeToString(sum[:])
}

// EngineCacheUserPattern matches every cached engine artifact for one user,
// across all operations and parameter variants.
func EngineCacheUserPattern(userID uuid.UUID) string {
	return "career:*:" + userID.String() + ":*"
}
