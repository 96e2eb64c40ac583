package usecase

import (
	"context"
	"time"

	"career-compass/internal/domain/engine"
	"career-compass/internal/domain/user"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	users   map[uuid.UUID]user.User
	ids     []uuid.UUID
	idsErr  error
	byIDErr error
}

func (m mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if m.byIDErr != nil {
		return user.User{}, m.byIDErr
	}
	u, ok := m.users[id]
	if !ok {
		return user.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (m mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, repository.ErrUserNotFound
}

func (m mockUserRepo) Create(context.Context, user.User) error { return nil }

func (m mockUserRepo) ListUserIDs(_ context.Context, limit int) ([]uuid.UUID, error) {
	if m.idsErr != nil {
		return nil, m.idsErr
	}
	if limit > 0 && len(m.ids) > limit {
		return m.ids[:limit], nil
	}
	return m.ids, nil
}

type mockProfileRepo struct {
	profiles map[uuid.UUID]repository.Profile
}

func (m mockProfileRepo) FindByUserID(_ context.Context, id uuid.UUID) (repository.Profile, error) {
	p, ok := m.profiles[id]
	if !ok {
		return repository.Profile{}, repository.ErrProfileNotFound
	}
	return p, nil
}

func (m mockProfileRepo) Upsert(context.Context, repository.Profile) error { return nil }

type mockSkillRepo struct {
	skills map[uuid.UUID][]repository.UserSkill
	err    error
}

func (m mockSkillRepo) FindByUserID(_ context.Context, id uuid.UUID) ([]repository.UserSkill, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.skills[id], nil
}

type mockExperienceRepo struct {
	history map[uuid.UUID][]repository.Experience
}

func (m mockExperienceRepo) FindByUserID(_ context.Context, id uuid.UUID) ([]repository.Experience, error) {
	return m.history[id], nil
}

type mockMarketRepo struct {
	trending    []repository.TrendingSkill
	trendingErr error
	reqsByRole  map[string][]repository.RoleRequirement
	reqsErr     error
	meta        map[string]repository.SkillMetadata
	metaErr     error
}

func (m mockMarketRepo) TrendingSkills(_ context.Context, industry string, limit int) ([]repository.TrendingSkill, error) {
	if m.trendingErr != nil {
		return nil, m.trendingErr
	}
	out := make([]repository.TrendingSkill, 0, len(m.trending))
	for _, t := range m.trending {
		if t.Industry == industry {
			out = append(out, t)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m mockMarketRepo) RoleRequiredSkills(_ context.Context, role string) ([]repository.RoleRequirement, error) {
	if m.reqsErr != nil {
		return nil, m.reqsErr
	}
	return m.reqsByRole[role], nil
}

func (m mockMarketRepo) SkillMetadataFor(_ context.Context, skills []string) (map[string]repository.SkillMetadata, error) {
	if m.metaErr != nil {
		return nil, m.metaErr
	}
	out := map[string]repository.SkillMetadata{}
	for _, s := range skills {
		if md, ok := m.meta[s]; ok {
			out[s] = md
		}
	}
	return out, nil
}

type mockTransitionRepo struct {
	rows []repository.CareerTransition
	err  error
}

func (m mockTransitionRepo) FindByUserIDs(_ context.Context, ids []uuid.UUID) ([]repository.CareerTransition, error) {
	if m.err != nil {
		return nil, m.err
	}
	want := map[uuid.UUID]struct{}{}
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := make([]repository.CareerTransition, 0, len(m.rows))
	for _, r := range m.rows {
		if _, ok := want[r.UserID]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

type mockSalaryRepo struct {
	salaries map[string]float64
	err      error
}

func (m mockSalaryRepo) SalariesByRoles(_ context.Context, roles []string) (map[string]float64, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := map[string]float64{}
	for _, r := range roles {
		if v, ok := m.salaries[r]; ok {
			out[r] = v
		}
	}
	return out, nil
}

// mockCache records sets and serves a single pre-loaded value.
type mockCache struct {
	hit      bool
	value    func(out any)
	getErr   error
	sweepErr error
	sets     map[string]time.Duration
	gets     []string
	sweeps   []string
}

func newMockCache() *mockCache {
	return &mockCache{sets: map[string]time.Duration{}}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.gets = append(m.gets, key)
	if m.getErr != nil {
		return false, m.getErr
	}
	if m.hit && m.value != nil {
		m.value(out)
		return true, nil
	}
	return false, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, _ any, ttl time.Duration) error {
	m.sets[key] = ttl
	return nil
}

func (m *mockCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.sweeps = append(m.sweeps, pattern)
	return m.sweepErr
}

type mockExtractor struct {
	profiles map[uuid.UUID]engine.FeatureProfile
	errs     map[uuid.UUID]error
	calls    int
}

func (m *mockExtractor) ExtractFeatures(_ context.Context, id uuid.UUID) (engine.FeatureProfile, error) {
	m.calls++
	if err, ok := m.errs[id]; ok {
		return engine.FeatureProfile{}, err
	}
	p, ok := m.profiles[id]
	if !ok {
		return engine.FeatureProfile{}, ErrUserNotFound
	}
	return p, nil
}

type mockSimilarity struct {
	peers []PeerProfile
	err   error
}

func (m mockSimilarity) FindSimilarUsers(_ context.Context, _ uuid.UUID, limit int) ([]engine.SimilarityScore, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]engine.SimilarityScore, 0, len(m.peers))
	for _, p := range m.peers {
		out = append(out, engine.SimilarityScore{PeerID: p.Profile.UserID, Score: p.Score})
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m mockSimilarity) FindSimilarProfiles(_ context.Context, _ uuid.UUID, limit int) ([]PeerProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	peers := m.peers
	if limit > 0 && len(peers) > limit {
		peers = peers[:limit]
	}
	return peers, nil
}
