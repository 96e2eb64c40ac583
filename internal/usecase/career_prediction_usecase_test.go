package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"career-compass/internal/domain/engine"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

func predictionFixture(id uuid.UUID, peers []PeerProfile, transitions []repository.CareerTransition) *CareerPrediction {
	extractor := &mockExtractor{profiles: map[uuid.UUID]engine.FeatureProfile{
		id: {
			UserID:            id,
			Skills:            map[string]int{"javascript": 3, "sql": 2, "docker": 2},
			YearsOfExperience: 4,
			TargetRole:        "software-engineer",
		},
	}}
	market := mockMarketRepo{
		reqsByRole: map[string][]repository.RoleRequirement{
			"senior-engineer": {
				{Role: "senior-engineer", Skill: "javascript", RequiredLevel: 4, Importance: 5},
				{Role: "senior-engineer", Skill: "system-design", RequiredLevel: 4, Importance: 5},
			},
		},
	}
	salaries := mockSalaryRepo{salaries: map[string]float64{
		"software-engineer": 95000,
		"senior-engineer":   135000,
	}}
	return NewCareerPredictionUsecase(
		extractor,
		mockSimilarity{peers: peers},
		mockTransitionRepo{rows: transitions},
		market,
		salaries,
		nil,
		CareerPredictionConfig{},
		nil,
	)
}

func TestCareerPrediction_EmptyPeerPool(t *testing.T) {
	id := uuid.New()
	uc := predictionFixture(id, nil, nil)

	got, err := uc.PredictCareerPath(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got.PredictedRoles) != 0 {
		t.Fatalf("expected no predicted roles, got %+v", got.PredictedRoles)
	}
	if len(got.CareerPath) != 1 || got.CareerPath[0].Step != 0 {
		t.Fatalf("expected only the synthetic current step, got %+v", got.CareerPath)
	}
	if got.CareerPath[0].Role != "software-engineer" || got.CareerPath[0].DurationYears != 0 {
		t.Fatalf("unexpected step 0: %+v", got.CareerPath[0])
	}
	// 3 skills and 4 years keep only the few-predictions penalty.
	if got.ConfidenceScore != 90 {
		t.Fatalf("expected confidence 90, got %d", got.ConfidenceScore)
	}
}

func TestCareerPrediction_AggregatesPeerTransitions(t *testing.T) {
	id := uuid.New()
	peerA := uuid.New()
	peerB := uuid.New()
	peers := []PeerProfile{
		{Profile: engine.FeatureProfile{UserID: peerA}, Score: 0.9},
		{Profile: engine.FeatureProfile{UserID: peerB}, Score: 0.8},
	}
	transitions := []repository.CareerTransition{
		{UserID: peerA, FromRole: "software-engineer", ToRole: "senior-engineer", YearsToTransition: 2},
		{UserID: peerB, FromRole: "software-engineer", ToRole: "senior-engineer", YearsToTransition: 4},
		{UserID: peerB, FromRole: "data-analyst", ToRole: "data-scientist", YearsToTransition: 3},
	}
	uc := predictionFixture(id, peers, transitions)

	got, err := uc.PredictCareerPath(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got.PredictedRoles) != 1 {
		t.Fatalf("expected a single destination, got %+v", got.PredictedRoles)
	}
	top := got.PredictedRoles[0]
	if top.Role != "senior-engineer" || top.TransitionCount != 2 {
		t.Fatalf("unexpected destination: %+v", top)
	}
	if top.AvgYears != 3 {
		t.Fatalf("expected incremental average 3, got %v", top.AvgYears)
	}
	// 2 matching transitions over 3 scanned.
	if top.Probability < 66.6 || top.Probability > 66.7 {
		t.Fatalf("unexpected probability: %v", top.Probability)
	}

	if len(got.CareerPath) != 2 {
		t.Fatalf("expected step 0 plus one transition, got %+v", got.CareerPath)
	}
	step := got.CareerPath[1]
	if step.Role != "senior-engineer" || step.DurationYears != 3 || step.Salary != 135000 {
		t.Fatalf("unexpected step 1: %+v", step)
	}
	if !reflect.DeepEqual(step.SkillsToLearn, []string{"system-design"}) {
		t.Fatalf("held skills must not appear in skillsToLearn: %+v", step.SkillsToLearn)
	}
}

func TestCareerPrediction_Deterministic(t *testing.T) {
	id := uuid.New()
	peer := uuid.New()
	peers := []PeerProfile{{Profile: engine.FeatureProfile{UserID: peer}, Score: 0.9}}
	transitions := []repository.CareerTransition{
		{UserID: peer, FromRole: "software-engineer", ToRole: "senior-engineer", YearsToTransition: 2},
	}
	uc := predictionFixture(id, peers, transitions)

	first, err := uc.PredictCareerPath(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := uc.PredictCareerPath(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("prediction must be deterministic:\n%+v\n%+v", first, second)
	}
}

func TestCareerPrediction_PeerRankingFailureDegrades(t *testing.T) {
	id := uuid.New()
	extractor := &mockExtractor{profiles: map[uuid.UUID]engine.FeatureProfile{
		id: {UserID: id, Skills: map[string]int{"go": 3}, TargetRole: "software-engineer"},
	}}
	uc := NewCareerPredictionUsecase(
		extractor,
		mockSimilarity{err: errors.New("ranking down")},
		mockTransitionRepo{},
		mockMarketRepo{},
		mockSalaryRepo{},
		nil,
		CareerPredictionConfig{},
		nil,
	)

	got, err := uc.PredictCareerPath(context.Background(), id)
	if err != nil {
		t.Fatalf("ranking failure must not fail the request: %v", err)
	}
	if len(got.PredictedRoles) != 0 || len(got.CareerPath) != 1 {
		t.Fatalf("expected empty-pool shape, got %+v", got)
	}
}

func TestCareerPrediction_ConfidenceFloorScenario(t *testing.T) {
	id := uuid.New()
	extractor := &mockExtractor{profiles: map[uuid.UUID]engine.FeatureProfile{
		id: {UserID: id, Skills: map[string]int{"go": 1}, YearsOfExperience: 0.5, TargetRole: "software-engineer"},
	}}
	uc := NewCareerPredictionUsecase(
		extractor,
		mockSimilarity{},
		mockTransitionRepo{},
		mockMarketRepo{},
		mockSalaryRepo{},
		nil,
		CareerPredictionConfig{},
		nil,
	)

	got, err := uc.PredictCareerPath(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ConfidenceScore != 55 {
		t.Fatalf("expected all three penalties to apply, got %d", got.ConfidenceScore)
	}
}

func TestCareerPrediction_UnknownUserPropagates(t *testing.T) {
	uc := NewCareerPredictionUsecase(&mockExtractor{}, mockSimilarity{}, mockTransitionRepo{}, mockMarketRepo{}, mockSalaryRepo{}, nil, CareerPredictionConfig{}, nil)
	_, err := uc.PredictCareerPath(context.Background(), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
