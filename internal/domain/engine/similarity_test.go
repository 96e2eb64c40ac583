package engine

import (
	"math"
	"testing"

	"github.com/google/uuid"
)

func profileWith(skills map[string]int, years float64, role string) FeatureProfile {
	return FeatureProfile{
		UserID:            uuid.New(),
		Skills:            skills,
		YearsOfExperience: years,
		TargetRole:        role,
	}
}

func TestSimilarity_IdenticalProfiles(t *testing.T) {
	a := profileWith(map[string]int{"go": 4, "sql": 3}, 5, "senior-engineer")
	b := profileWith(map[string]int{"go": 4, "sql": 3}, 5, "senior-engineer")

	got := Similarity(a, b)
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("expected 1.0, got %v", got)
	}
}

func TestSimilarity_Range(t *testing.T) {
	cases := []struct {
		name string
		a, b FeatureProfile
	}{
		{"disjoint", profileWith(map[string]int{"go": 4}, 0, "a"), profileWith(map[string]int{"rust": 2}, 40, "b")},
		{"empty skills", profileWith(nil, 1, ""), profileWith(nil, 1, "")},
		{"partial", profileWith(map[string]int{"go": 4, "sql": 2}, 3, "engineer"), profileWith(map[string]int{"go": 1}, 6, "engineer")},
	}
	for _, tc := range cases {
		got := Similarity(tc.a, tc.b)
		if got < 0 || got > 1 {
			t.Fatalf("%s: similarity out of range: %v", tc.name, got)
		}
	}
}

func TestSimilarity_EmptySkillSetsNoDivisionError(t *testing.T) {
	a := profileWith(nil, 2, "")
	b := profileWith(map[string]int{}, 2, "")

	got := Similarity(a, b)
	// overlap 0, proximity 1, empty role does not match
	if math.Abs(got-weightExperience) > 1e-9 {
		t.Fatalf("expected %v, got %v", weightExperience, got)
	}
}

func TestRankPeers_ExcludesSelfAndOrdersDescending(t *testing.T) {
	self := profileWith(map[string]int{"go": 4, "sql": 3}, 5, "senior-engineer")

	near := profileWith(map[string]int{"go": 4, "sql": 3}, 5, "senior-engineer")
	far := profileWith(map[string]int{"cobol": 2}, 30, "architect")

	peers := []FeatureProfile{far, self, near}
	got := RankPeers(self, peers, 10)

	if len(got) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(got))
	}
	for _, s := range got {
		if s.PeerID == self.UserID {
			t.Fatalf("self must not appear in results")
		}
	}
	if got[0].PeerID != near.UserID {
		t.Fatalf("expected closest peer first")
	}
	if got[0].Score < got[1].Score {
		t.Fatalf("expected descending scores")
	}
}

func TestRankPeers_TiesKeepScanOrder(t *testing.T) {
	self := profileWith(map[string]int{"go": 4}, 5, "engineer")
	p1 := profileWith(map[string]int{"go": 4}, 5, "engineer")
	p2 := profileWith(map[string]int{"go": 4}, 5, "engineer")

	got := RankPeers(self, []FeatureProfile{p1, p2}, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(got))
	}
	if got[0].PeerID != p1.UserID || got[1].PeerID != p2.UserID {
		t.Fatalf("expected tie-break by scan order")
	}
}

func TestRankPeers_Limit(t *testing.T) {
	self := profileWith(map[string]int{"go": 4}, 5, "engineer")
	peers := make([]FeatureProfile, 0, 10)
	for i := 0; i < 10; i++ {
		peers = append(peers, profileWith(map[string]int{"go": 4}, float64(i), "engineer"))
	}

	got := RankPeers(self, peers, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(got))
	}
}
