package seeder

import (
	"context"

	"career-compass/internal/database"
)

type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS user_profiles (
		user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		target_role TEXT,
		industries TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS user_skills (
		id BIGSERIAL PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		skill TEXT NOT NULL,
		proficiency_level INT NOT NULL DEFAULT 0,
		is_certified BOOLEAN NOT NULL DEFAULT false,
		UNIQUE (user_id, skill)
	)`,
	`CREATE TABLE IF NOT EXISTS user_experiences (
		id BIGSERIAL PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		role TEXT NOT NULL,
		started_at TIMESTAMPTZ NOT NULL,
		ended_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS trending_skills (
		id BIGSERIAL PRIMARY KEY,
		industry TEXT NOT NULL,
		skill TEXT NOT NULL,
		demand_score DOUBLE PRECISION NOT NULL DEFAULT 0,
		UNIQUE (industry, skill)
	)`,
	`CREATE TABLE IF NOT EXISTS skill_metadata (
		skill TEXT PRIMARY KEY,
		difficulty INT NOT NULL DEFAULT 0,
		market_demand DOUBLE PRECISION NOT NULL DEFAULT 0,
		salary_boost DOUBLE PRECISION NOT NULL DEFAULT 0,
		prerequisites TEXT[] NOT NULL DEFAULT '{}',
		resources TEXT[] NOT NULL DEFAULT '{}'
	)`,
	`CREATE TABLE IF NOT EXISTS role_skill_requirements (
		id BIGSERIAL PRIMARY KEY,
		role TEXT NOT NULL,
		skill TEXT NOT NULL,
		required_level INT NOT NULL DEFAULT 0,
		importance INT NOT NULL DEFAULT 0,
		UNIQUE (role, skill)
	)`,
	`CREATE TABLE IF NOT EXISTS career_transitions (
		id BIGSERIAL PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		from_role TEXT NOT NULL,
		to_role TEXT NOT NULL,
		years_to_transition DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS role_salaries (
		role TEXT PRIMARY KEY,
		annual_salary DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_user_skills_user_id ON user_skills (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_user_experiences_user_id ON user_experiences (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_career_transitions_user_id ON career_transitions (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_trending_skills_industry ON trending_skills (industry)`,
	`CREATE INDEX IF NOT EXISTS idx_role_skill_requirements_role ON role_skill_requirements (role)`,
}

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
