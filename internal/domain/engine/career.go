package engine

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

const (
	maxPredictedRoles = 5
	maxPathSteps      = 4

	minConfidence = 30

	penaltyFewSkills      = 20
	penaltyLowExperience  = 15
	penaltyFewPredictions = 10
)

type Transition struct {
	UserID   uuid.UUID
	FromRole string
	ToRole   string
	Years    float64
}

type PredictedRole struct {
	Role            string
	Probability     float64
	AvgYears        float64
	TransitionCount int
}

type CareerStep struct {
	Step          int
	Role          string
	DurationYears int
	SkillsToLearn []string
	Salary        float64
}

type CareerPrediction struct {
	UserID          uuid.UUID
	CurrentRole     string
	PredictedRoles  []PredictedRole
	CareerPath      []CareerStep
	ConfidenceScore int
}

// AggregateTransitions folds peer transition history into ranked destination
// roles. Only transitions originating from currentRole count; the probability
// denominator is every transition scanned, matching or not. The running
// average uses the incremental form avg = (avg*(n-1) + v) / n.
func AggregateTransitions(currentRole string, transitions []Transition) []PredictedRole {
	type agg struct {
		count int
		avg   float64
	}

	byRole := map[string]*agg{}
	order := make([]string, 0)
	total := 0

	for _, t := range transitions {
		total++
		if t.FromRole != currentRole || t.ToRole == "" {
			continue
		}
		a, ok := byRole[t.ToRole]
		if !ok {
			a = &agg{}
			byRole[t.ToRole] = a
			order = append(order, t.ToRole)
		}
		a.count++
		a.avg = (a.avg*float64(a.count-1) + t.Years) / float64(a.count)
	}

	out := make([]PredictedRole, 0, len(order))
	for _, role := range order {
		a := byRole[role]
		prob := float64(a.count) / float64(total) * 100
		if prob > 100 {
			prob = 100
		}
		out = append(out, PredictedRole{
			Role:            role,
			Probability:     prob,
			AvgYears:        a.avg,
			TransitionCount: a.count,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Probability > out[j].Probability
	})
	if len(out) > maxPredictedRoles {
		out = out[:maxPredictedRoles]
	}
	return out
}

// BuildPrediction assembles the timeline from ranked destinations. Step 0 is
// always the synthetic current state with duration 0; the walk covers at most
// the top four predictions.
func BuildPrediction(
	profile FeatureProfile,
	predicted []PredictedRole,
	reqsByRole map[string][]RoleSkillRequirement,
	salaryByRole map[string]float64,
) CareerPrediction {
	currentRole := profile.TargetRole
	if currentRole == "" {
		currentRole = RoleNotSpecified
	}

	path := make([]CareerStep, 0, maxPathSteps+1)
	path = append(path, CareerStep{
		Step:          0,
		Role:          currentRole,
		DurationYears: 0,
		SkillsToLearn: []string{},
		Salary:        salaryByRole[currentRole],
	})

	steps := predicted
	if len(steps) > maxPathSteps {
		steps = steps[:maxPathSteps]
	}
	for i, p := range steps {
		path = append(path, CareerStep{
			Step:          i + 1,
			Role:          p.Role,
			DurationYears: int(math.Round(p.AvgYears)),
			SkillsToLearn: missingSkills(profile, reqsByRole[p.Role]),
			Salary:        salaryByRole[p.Role],
		})
	}

	return CareerPrediction{
		UserID:          profile.UserID,
		CurrentRole:     currentRole,
		PredictedRoles:  predicted,
		CareerPath:      path,
		ConfidenceScore: confidence(profile, len(predicted)),
	}
}

func missingSkills(profile FeatureProfile, reqs []RoleSkillRequirement) []string {
	out := make([]string, 0, len(reqs))
	for _, r := range reqs {
		if r.Skill == "" || profile.HasSkill(r.Skill) {
			continue
		}
		out = append(out, r.Skill)
	}
	return out
}

// confidence applies the fixed heuristic penalties. These constants are a
// calibration contract, not derived values.
func confidence(profile FeatureProfile, predictedCount int) int {
	score := 100
	if profile.SkillCount() < 3 {
		score -= penaltyFewSkills
	}
	if profile.YearsOfExperience < 1 {
		score -= penaltyLowExperience
	}
	if predictedCount < 3 {
		score -= penaltyFewPredictions
	}
	if score < minConfidence {
		score = minConfidence
	}
	return score
}
