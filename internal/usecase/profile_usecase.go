package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type ProfileInput struct {
	TargetRole string
	Industries []string
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (repository.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (repository.Profile, error)
}

type Profile struct {
	profiles repository.ProfileRepository
	cache    EngineCache
	logger   *log.Logger
}

func NewProfileUsecase(profiles repository.ProfileRepository, cache EngineCache, logger *log.Logger) *Profile {
	return &Profile{profiles: profiles, cache: cache, logger: logger}
}

func (u *Profile) GetProfile(ctx context.Context, userID uuid.UUID) (repository.Profile, error) {
	if userID == uuid.Nil {
		return repository.Profile{}, ErrInvalidInput
	}

	p, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return repository.Profile{UserID: userID, Industries: []string{}}, nil
		}
		return repository.Profile{}, err
	}
	return p, nil
}

// UpdateProfile persists the career profile and sweeps the user's cached
// engine artifacts: recommendations, gaps and predictions all key off the
// target role and industries, so stale entries must not outlive the change.
func (u *Profile) UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (repository.Profile, error) {
	if userID == uuid.Nil {
		return repository.Profile{}, ErrInvalidInput
	}

	targetRole := normalizeKeyValue(in.TargetRole)
	industries := make([]string, 0, len(in.Industries))
	for _, ind := range in.Industries {
		if v := normalizeKeyValue(ind); v != "" {
			industries = append(industries, v)
		}
	}
	if targetRole == "" && len(industries) == 0 {
		return repository.Profile{}, ErrInvalidInput
	}

	p := repository.Profile{
		UserID:     userID,
		TargetRole: strings.ReplaceAll(targetRole, " ", "-"),
		Industries: industries,
	}
	if err := u.profiles.Upsert(ctx, p); err != nil {
		return repository.Profile{}, err
	}

	// Invalidation is best effort: a failed sweep leaves entries to expire
	// by TTL, it never fails the update.
	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, EngineCacheUserPattern(userID)); err != nil {
			if u.logger != nil {
				u.logger.Printf("[Engine] cache sweep failed user_id=%s err=%v", userID, err)
			}
		} else if u.logger != nil {
			u.logger.Printf("[Engine] Cache invalidated user_id=%s", userID)
		}
	}

	return p, nil
}
