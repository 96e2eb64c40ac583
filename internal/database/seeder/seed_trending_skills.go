package seeder

import (
	"context"

	"career-compass/internal/database"
)

type TrendingSkillsSeeder struct{}

func (TrendingSkillsSeeder) Name() string { return "trending_skills" }

func (TrendingSkillsSeeder) Run(ctx context.Context, db database.DB) error {
	items := []struct {
		Industry string
		Skill    string
		Demand   float64
	}{
		{"general", "python", 91},
		{"general", "javascript", 90},
		{"general", "sql", 88},
		{"general", "aws", 86},
		{"general", "docker", 84},
		{"general", "react", 83},
		{"general", "typescript", 81},
		{"general", "kubernetes", 78},
		{"general", "system-design", 74},
		{"general", "machine-learning", 72},
		{"technology", "go", 85},
		{"technology", "kubernetes", 84},
		{"technology", "typescript", 83},
		{"technology", "system-design", 80},
		{"technology", "microservices", 77},
		{"technology", "terraform", 70},
		{"finance", "python", 88},
		{"finance", "sql", 87},
		{"finance", "data-analysis", 82},
		{"finance", "machine-learning", 79},
		{"healthcare", "data-analysis", 80},
		{"healthcare", "python", 76},
		{"healthcare", "sql", 73},
	}

	for _, it := range items {
		_, err := db.Exec(ctx,
			`INSERT INTO trending_skills (industry, skill, demand_score)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (industry, skill) DO NOTHING`,
			it.Industry, it.Skill, it.Demand,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
