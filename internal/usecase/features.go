package usecase

import (
	"context"
	"errors"
	"time"

	"career-compass/internal/domain/engine"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type FeatureExtractor interface {
	ExtractFeatures(ctx context.Context, userID uuid.UUID) (engine.FeatureProfile, error)
}

type Features struct {
	users       repository.UserRepository
	profiles    repository.ProfileRepository
	skills      repository.UserSkillRepository
	experiences repository.ExperienceRepository

	now func() time.Time
}

func NewFeaturesUsecase(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	skills repository.UserSkillRepository,
	experiences repository.ExperienceRepository,
) *Features {
	return &Features{
		users:       users,
		profiles:    profiles,
		skills:      skills,
		experiences: experiences,
		now:         time.Now,
	}
}

// ExtractFeatures builds the normalized feature profile for one user. It is a
// pure read: nothing is persisted and the returned value is never mutated.
func (u *Features) ExtractFeatures(ctx context.Context, userID uuid.UUID) (engine.FeatureProfile, error) {
	if userID == uuid.Nil {
		return engine.FeatureProfile{}, ErrInvalidInput
	}

	if _, err := u.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return engine.FeatureProfile{}, ErrUserNotFound
		}
		return engine.FeatureProfile{}, err
	}

	userSkills, err := u.skills.FindByUserID(ctx, userID)
	if err != nil {
		return engine.FeatureProfile{}, err
	}

	skills := make(map[string]int, len(userSkills))
	certs := make([]string, 0)
	for _, us := range userSkills {
		if us.Skill == "" {
			continue
		}
		skills[us.Skill] = us.ProficiencyLevel
		if us.IsCertified {
			certs = append(certs, us.Skill)
		}
	}

	history, err := u.experiences.FindByUserID(ctx, userID)
	if err != nil {
		return engine.FeatureProfile{}, err
	}
	spans := make([]engine.ExperienceSpan, 0, len(history))
	for _, h := range history {
		spans = append(spans, engine.ExperienceSpan{
			Role:      h.Role,
			StartedAt: h.StartedAt,
			EndedAt:   h.EndedAt,
		})
	}

	targetRole := engine.RoleNotSpecified
	industries := []string{}
	profile, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return engine.FeatureProfile{}, err
	}
	if err == nil {
		if profile.TargetRole != "" {
			targetRole = profile.TargetRole
		}
		if len(profile.Industries) > 0 {
			industries = profile.Industries
		}
	}

	return engine.FeatureProfile{
		UserID:            userID,
		Skills:            skills,
		Certifications:    certs,
		ExperienceLevel:   engine.MeanProficiency(skills),
		YearsOfExperience: engine.ApproxYears(spans, u.now()),
		TargetRole:        targetRole,
		Industries:        industries,
	}, nil
}
