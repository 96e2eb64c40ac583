package repository

import (
	"context"

	"career-compass/internal/database"
)

type TrendingSkill struct {
	Industry    string
	Skill       string
	DemandScore float64
}

type RoleRequirement struct {
	Role          string
	Skill         string
	RequiredLevel int
	Importance    int
}

type SkillMetadata struct {
	Skill         string
	Difficulty    int
	MarketDemand  float64
	SalaryBoost   float64
	Prerequisites []string
	Resources     []string
}

type MarketTrendRepository interface {
	TrendingSkills(ctx context.Context, industry string, limit int) ([]TrendingSkill, error)
	RoleRequiredSkills(ctx context.Context, role string) ([]RoleRequirement, error)
	SkillMetadataFor(ctx context.Context, skills []string) (map[string]SkillMetadata, error)
}

type PostgresMarketTrendRepository struct {
	db database.DB
}

func NewPostgresMarketTrendRepository(db database.DB) *PostgresMarketTrendRepository {
	return &PostgresMarketTrendRepository{db: db}
}

func (r *PostgresMarketTrendRepository) TrendingSkills(ctx context.Context, industry string, limit int) ([]TrendingSkill, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(ctx,
		`SELECT industry, skill, demand_score
		 FROM trending_skills
		 WHERE industry = $1
		 ORDER BY demand_score DESC, skill ASC
		 LIMIT $2`,
		industry, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TrendingSkill, 0, limit)
	for rows.Next() {
		var t TrendingSkill
		if err := rows.Scan(&t.Industry, &t.Skill, &t.DemandScore); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMarketTrendRepository) RoleRequiredSkills(ctx context.Context, role string) ([]RoleRequirement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT role, skill, required_level, importance
		 FROM role_skill_requirements
		 WHERE role = $1
		 ORDER BY importance DESC, skill ASC`,
		role,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RoleRequirement, 0)
	for rows.Next() {
		var rr RoleRequirement
		if err := rows.Scan(&rr.Role, &rr.Skill, &rr.RequiredLevel, &rr.Importance); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMarketTrendRepository) SkillMetadataFor(ctx context.Context, skills []string) (map[string]SkillMetadata, error) {
	out := map[string]SkillMetadata{}
	if len(skills) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT skill, COALESCE(difficulty, 0), COALESCE(market_demand, 0), COALESCE(salary_boost, 0),
		        COALESCE(prerequisites, '{}'), COALESCE(resources, '{}')
		 FROM skill_metadata
		 WHERE skill = ANY($1)`,
		skills,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var m SkillMetadata
		if err := rows.Scan(&m.Skill, &m.Difficulty, &m.MarketDemand, &m.SalaryBoost, &m.Prerequisites, &m.Resources); err != nil {
			return nil, err
		}
		out[m.Skill] = m
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
