package seeder

import (
	"context"

	"career-compass/internal/database"
)

type SkillMetadataSeeder struct{}

func (SkillMetadataSeeder) Name() string { return "skill_metadata" }

func (SkillMetadataSeeder) Run(ctx context.Context, db database.DB) error {
	items := []struct {
		Skill         string
		Difficulty    int
		MarketDemand  float64
		SalaryBoost   float64
		Prerequisites []string
		Resources     []string
	}{
		{"javascript", 1, 92, 8, nil, []string{"MDN JavaScript Guide"}},
		{"typescript", 2, 88, 10, []string{"javascript"}, []string{"TypeScript Handbook"}},
		{"react", 2, 90, 9, []string{"javascript"}, []string{"React Docs"}},
		{"nodejs", 2, 85, 9, []string{"javascript"}, []string{"Node.js Docs"}},
		{"go", 2, 82, 12, nil, []string{"Tour of Go"}},
		{"python", 1, 91, 8, nil, []string{"Python Tutorial"}},
		{"sql", 1, 89, 7, nil, []string{"PostgreSQL Tutorial"}},
		{"postgresql", 2, 80, 9, []string{"sql"}, []string{"PostgreSQL Docs"}},
		{"redis", 2, 70, 7, nil, []string{"Redis University"}},
		{"docker", 2, 86, 10, nil, []string{"Docker Get Started"}},
		{"kubernetes", 3, 78, 14, []string{"docker"}, []string{"Kubernetes Basics"}},
		{"aws", 3, 87, 13, nil, []string{"AWS Skill Builder"}},
		{"terraform", 3, 68, 12, []string{"aws"}, []string{"Terraform Tutorials"}},
		{"system-design", 4, 75, 18, nil, []string{"Designing Data-Intensive Applications"}},
		{"microservices", 3, 72, 13, []string{"docker"}, []string{"Building Microservices"}},
		{"machine-learning", 4, 74, 20, []string{"python"}, []string{"fast.ai"}},
		{"data-analysis", 2, 76, 9, []string{"python", "sql"}, []string{"Pandas Docs"}},
		{"graphql", 2, 60, 8, []string{"javascript"}, []string{"GraphQL Docs"}},
		{"ci-cd", 2, 71, 8, nil, []string{"GitHub Actions Docs"}},
		{"leadership", 3, 66, 15, nil, []string{"The Manager's Path"}},
	}

	for _, it := range items {
		prereqs := it.Prerequisites
		if prereqs == nil {
			prereqs = []string{}
		}
		_, err := db.Exec(ctx,
			`INSERT INTO skill_metadata (skill, difficulty, market_demand, salary_boost, prerequisites, resources)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (skill) DO NOTHING`,
			it.Skill, it.Difficulty, it.MarketDemand, it.SalaryBoost, prereqs, it.Resources,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
