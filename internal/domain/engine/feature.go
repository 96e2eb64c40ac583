package engine

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const RoleNotSpecified = "not-specified"

const hoursPerYear = 24 * 365.25

type FeatureProfile struct {
	UserID            uuid.UUID
	Skills            map[string]int
	Certifications    []string
	ExperienceLevel   float64
	YearsOfExperience float64
	TargetRole        string
	Industries        []string
}

type ExperienceSpan struct {
	Role      string
	StartedAt time.Time
	EndedAt   *time.Time
}

func (p FeatureProfile) HasSkill(skill string) bool {
	_, ok := p.Skills[skill]
	return ok
}

func (p FeatureProfile) SkillCount() int {
	return len(p.Skills)
}

// MeanProficiency averages proficiency over held skills on the 0-5 scale.
func MeanProficiency(skills map[string]int) float64 {
	if len(skills) == 0 {
		return 0
	}
	sum := 0
	for _, lvl := range skills {
		sum += clampInt(lvl, 0, 5)
	}
	return float64(sum) / float64(len(skills))
}

// ApproxYears estimates years of experience by averaging the span since the
// earliest role start together with the summed duration of all roles. This is
// intentionally an approximation rather than an exact tenure sum.
func ApproxYears(history []ExperienceSpan, now time.Time) float64 {
	if len(history) == 0 {
		return 0
	}

	earliest := history[0].StartedAt
	sum := 0.0
	for _, h := range history {
		if h.StartedAt.Before(earliest) {
			earliest = h.StartedAt
		}
		end := now
		if h.EndedAt != nil && !h.EndedAt.IsZero() {
			end = *h.EndedAt
		}
		if end.After(h.StartedAt) {
			sum += end.Sub(h.StartedAt).Hours() / hoursPerYear
		}
	}

	span := 0.0
	if now.After(earliest) {
		span = now.Sub(earliest).Hours() / hoursPerYear
	}

	v := (span + sum) / float64(len(history))
	return math.Round(v*10) / 10
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
