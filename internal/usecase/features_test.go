package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-compass/internal/domain/engine"
	"career-compass/internal/domain/user"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

func newFeaturesFixture(id uuid.UUID, skills []repository.UserSkill, history []repository.Experience, profile *repository.Profile) *Features {
	profiles := map[uuid.UUID]repository.Profile{}
	if profile != nil {
		profiles[id] = *profile
	}
	uc := NewFeaturesUsecase(
		mockUserRepo{users: map[uuid.UUID]user.User{id: {ID: id, Email: "a@b.c"}}},
		mockProfileRepo{profiles: profiles},
		mockSkillRepo{skills: map[uuid.UUID][]repository.UserSkill{id: skills}},
		mockExperienceRepo{history: map[uuid.UUID][]repository.Experience{id: history}},
	)
	uc.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	return uc
}

func TestFeatures_ExtractFeatures_UnknownUser(t *testing.T) {
	uc := NewFeaturesUsecase(mockUserRepo{}, mockProfileRepo{}, mockSkillRepo{}, mockExperienceRepo{})
	_, err := uc.ExtractFeatures(context.Background(), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFeatures_ExtractFeatures_NilUserID(t *testing.T) {
	uc := NewFeaturesUsecase(mockUserRepo{}, mockProfileRepo{}, mockSkillRepo{}, mockExperienceRepo{})
	_, err := uc.ExtractFeatures(context.Background(), uuid.Nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFeatures_ExtractFeatures_MissingProfileUsesSentinelRole(t *testing.T) {
	id := uuid.New()
	uc := newFeaturesFixture(id, nil, nil, nil)

	got, err := uc.ExtractFeatures(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.TargetRole != engine.RoleNotSpecified {
		t.Fatalf("expected sentinel role, got %q", got.TargetRole)
	}
	if len(got.Industries) != 0 {
		t.Fatalf("expected no industries, got %v", got.Industries)
	}
	if got.YearsOfExperience != 0 {
		t.Fatalf("expected 0 years, got %v", got.YearsOfExperience)
	}
}

func TestFeatures_ExtractFeatures_CollectsSkillsAndCertifications(t *testing.T) {
	id := uuid.New()
	started := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	uc := newFeaturesFixture(id,
		[]repository.UserSkill{
			{UserID: id, Skill: "go", ProficiencyLevel: 4, IsCertified: true},
			{UserID: id, Skill: "sql", ProficiencyLevel: 2},
		},
		[]repository.Experience{{UserID: id, Role: "software-engineer", StartedAt: started}},
		&repository.Profile{UserID: id, TargetRole: "senior-engineer", Industries: []string{"technology"}},
	)

	got, err := uc.ExtractFeatures(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Skills["go"] != 4 || got.Skills["sql"] != 2 {
		t.Fatalf("unexpected skills: %v", got.Skills)
	}
	if len(got.Certifications) != 1 || got.Certifications[0] != "go" {
		t.Fatalf("unexpected certifications: %v", got.Certifications)
	}
	if got.TargetRole != "senior-engineer" {
		t.Fatalf("unexpected target role: %q", got.TargetRole)
	}
	if got.ExperienceLevel != 3 {
		t.Fatalf("expected mean proficiency 3, got %v", got.ExperienceLevel)
	}
	if got.YearsOfExperience <= 0 {
		t.Fatalf("expected positive years, got %v", got.YearsOfExperience)
	}
}

func TestFeatures_ExtractFeatures_SkillRepoErrorPropagates(t *testing.T) {
	id := uuid.New()
	boom := errors.New("boom")
	uc := NewFeaturesUsecase(
		mockUserRepo{users: map[uuid.UUID]user.User{id: {ID: id}}},
		mockProfileRepo{},
		mockSkillRepo{err: boom},
		mockExperienceRepo{},
	)
	_, err := uc.ExtractFeatures(context.Background(), id)
	if !errors.Is(err, boom) {
		t.Fatalf("expected underlying error, got %v", err)
	}
}
