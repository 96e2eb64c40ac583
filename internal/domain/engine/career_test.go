package engine

import (
	"math"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func TestAggregateTransitions_CountsAndProbabilities(t *testing.T) {
	transitions := []Transition{
		{FromRole: "engineer", ToRole: "senior-engineer", Years: 2},
		{FromRole: "engineer", ToRole: "senior-engineer", Years: 4},
		{FromRole: "engineer", ToRole: "engineering-manager", Years: 5},
		{FromRole: "designer", ToRole: "design-lead", Years: 3},
	}

	got := AggregateTransitions("engineer", transitions)
	if len(got) != 2 {
		t.Fatalf("expected 2 predicted roles, got %d", len(got))
	}

	first := got[0]
	if first.Role != "senior-engineer" {
		t.Fatalf("expected senior-engineer first, got %q", first.Role)
	}
	if first.TransitionCount != 2 {
		t.Fatalf("expected count 2, got %d", first.TransitionCount)
	}
	// 2 of 4 scanned transitions
	if math.Abs(first.Probability-50) > 1e-9 {
		t.Fatalf("expected probability 50, got %v", first.Probability)
	}
	if math.Abs(first.AvgYears-3) > 1e-9 {
		t.Fatalf("expected avg 3 years, got %v", first.AvgYears)
	}
}

func TestAggregateTransitions_IncrementalAverage(t *testing.T) {
	transitions := []Transition{
		{FromRole: "engineer", ToRole: "senior-engineer", Years: 1},
		{FromRole: "engineer", ToRole: "senior-engineer", Years: 2},
		{FromRole: "engineer", ToRole: "senior-engineer", Years: 6},
	}

	got := AggregateTransitions("engineer", transitions)
	if len(got) != 1 {
		t.Fatalf("expected 1 predicted role, got %d", len(got))
	}
	if math.Abs(got[0].AvgYears-3) > 1e-9 {
		t.Fatalf("expected avg 3, got %v", got[0].AvgYears)
	}
}

func TestAggregateTransitions_EmptyPool(t *testing.T) {
	got := AggregateTransitions("engineer", nil)
	if len(got) != 0 {
		t.Fatalf("expected no predictions, got %d", len(got))
	}
}

func TestAggregateTransitions_TopFiveOnly(t *testing.T) {
	transitions := make([]Transition, 0, 7)
	roles := []string{"a", "b", "c", "d", "e", "f", "g"}
	for i, r := range roles {
		// more transitions toward earlier roles so ordering is deterministic
		for j := 0; j <= len(roles)-i; j++ {
			transitions = append(transitions, Transition{FromRole: "engineer", ToRole: r, Years: 2})
		}
	}

	got := AggregateTransitions("engineer", transitions)
	if len(got) != maxPredictedRoles {
		t.Fatalf("expected %d predicted roles, got %d", maxPredictedRoles, len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Probability > got[i-1].Probability {
			t.Fatalf("expected descending probabilities")
		}
	}
}

func TestBuildPrediction_EmptyPool(t *testing.T) {
	profile := FeatureProfile{
		UserID:            uuid.New(),
		Skills:            map[string]int{"go": 4, "sql": 3, "docker": 2},
		YearsOfExperience: 4,
		TargetRole:        "engineer",
	}

	got := BuildPrediction(profile, nil, nil, nil)
	if len(got.PredictedRoles) != 0 {
		t.Fatalf("expected no predicted roles")
	}
	if len(got.CareerPath) != 1 {
		t.Fatalf("expected only the synthetic step-0 entry, got %d steps", len(got.CareerPath))
	}
	step0 := got.CareerPath[0]
	if step0.Step != 0 || step0.Role != "engineer" || step0.DurationYears != 0 {
		t.Fatalf("unexpected step 0: %+v", step0)
	}
}

func TestBuildPrediction_ConfidencePenalties(t *testing.T) {
	// fewer than 3 skills, under a year of experience, fewer than 3 predicted
	// roles: 100 - 20 - 15 - 10 = 55
	profile := FeatureProfile{
		UserID:            uuid.New(),
		Skills:            map[string]int{"go": 2},
		YearsOfExperience: 0.5,
		TargetRole:        "engineer",
	}
	predicted := []PredictedRole{{Role: "senior-engineer", Probability: 100, AvgYears: 2, TransitionCount: 1}}

	got := BuildPrediction(profile, predicted, nil, nil)
	if got.ConfidenceScore != 55 {
		t.Fatalf("expected confidence 55, got %d", got.ConfidenceScore)
	}
}

func TestBuildPrediction_ConfidenceBounds(t *testing.T) {
	strong := FeatureProfile{
		UserID:            uuid.New(),
		Skills:            map[string]int{"go": 4, "sql": 3, "docker": 3},
		YearsOfExperience: 6,
	}
	predicted := []PredictedRole{
		{Role: "a", Probability: 40, AvgYears: 2},
		{Role: "b", Probability: 30, AvgYears: 2},
		{Role: "c", Probability: 30, AvgYears: 2},
	}

	got := BuildPrediction(strong, predicted, nil, nil)
	if got.ConfidenceScore != 100 {
		t.Fatalf("expected confidence 100, got %d", got.ConfidenceScore)
	}

	weak := FeatureProfile{UserID: uuid.New(), YearsOfExperience: 0}
	gotWeak := BuildPrediction(weak, nil, nil, nil)
	if gotWeak.ConfidenceScore < minConfidence || gotWeak.ConfidenceScore > 100 {
		t.Fatalf("confidence out of range: %d", gotWeak.ConfidenceScore)
	}
}

func TestBuildPrediction_PathStepsAndSalaries(t *testing.T) {
	profile := FeatureProfile{
		UserID:            uuid.New(),
		Skills:            map[string]int{"go": 4, "sql": 3, "docker": 2},
		YearsOfExperience: 3,
		TargetRole:        "engineer",
	}
	predicted := []PredictedRole{
		{Role: "senior-engineer", Probability: 60, AvgYears: 2.4, TransitionCount: 3},
		{Role: "staff-engineer", Probability: 40, AvgYears: 3.6, TransitionCount: 2},
	}
	reqs := map[string][]RoleSkillRequirement{
		"senior-engineer": {
			{Skill: "go", RequiredLevel: 4, Importance: 5},
			{Skill: "system-design", RequiredLevel: 4, Importance: 5},
		},
	}
	salaries := map[string]float64{
		"engineer":        90000,
		"senior-engineer": 130000,
	}

	got := BuildPrediction(profile, predicted, reqs, salaries)
	if len(got.CareerPath) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(got.CareerPath))
	}

	s1 := got.CareerPath[1]
	if s1.Role != "senior-engineer" || s1.DurationYears != 2 {
		t.Fatalf("unexpected step 1: %+v", s1)
	}
	if !reflect.DeepEqual(s1.SkillsToLearn, []string{"system-design"}) {
		t.Fatalf("unexpected skills to learn: %v", s1.SkillsToLearn)
	}
	if s1.Salary != 130000 {
		t.Fatalf("expected salary 130000, got %v", s1.Salary)
	}

	s2 := got.CareerPath[2]
	if s2.DurationYears != 4 {
		t.Fatalf("expected rounded duration 4, got %d", s2.DurationYears)
	}
	if s2.Salary != 0 {
		t.Fatalf("unknown role salary must default to 0, got %v", s2.Salary)
	}
}

func TestBuildPrediction_Deterministic(t *testing.T) {
	profile := FeatureProfile{
		UserID:            uuid.New(),
		Skills:            map[string]int{"go": 4, "sql": 3, "docker": 2},
		YearsOfExperience: 3,
		TargetRole:        "engineer",
	}
	transitions := []Transition{
		{FromRole: "engineer", ToRole: "senior-engineer", Years: 2},
		{FromRole: "engineer", ToRole: "engineering-manager", Years: 4},
		{FromRole: "engineer", ToRole: "senior-engineer", Years: 3},
	}

	a := BuildPrediction(profile, AggregateTransitions("engineer", transitions), nil, nil)
	b := BuildPrediction(profile, AggregateTransitions("engineer", transitions), nil, nil)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("prediction must be deterministic")
	}
}
