package seeder

import (
	"context"

	"career-compass/internal/database"
)

type RoleRequirementsSeeder struct{}

func (RoleRequirementsSeeder) Name() string { return "role_skill_requirements" }

func (RoleRequirementsSeeder) Run(ctx context.Context, db database.DB) error {
	items := []struct {
		Role          string
		Skill         string
		RequiredLevel int
		Importance    int
	}{
		{"software-engineer", "javascript", 3, 4},
		{"software-engineer", "sql", 2, 3},
		{"software-engineer", "git", 2, 3},
		{"software-engineer", "docker", 2, 2},
		{"senior-engineer", "javascript", 4, 5},
		{"senior-engineer", "system-design", 4, 5},
		{"senior-engineer", "sql", 3, 3},
		{"senior-engineer", "docker", 3, 3},
		{"senior-engineer", "ci-cd", 2, 2},
		{"staff-engineer", "system-design", 5, 5},
		{"staff-engineer", "microservices", 4, 4},
		{"staff-engineer", "leadership", 3, 4},
		{"engineering-manager", "leadership", 4, 5},
		{"engineering-manager", "system-design", 3, 3},
		{"data-analyst", "sql", 4, 5},
		{"data-analyst", "python", 3, 4},
		{"data-analyst", "data-analysis", 4, 5},
		{"data-scientist", "python", 4, 5},
		{"data-scientist", "machine-learning", 4, 5},
		{"data-scientist", "sql", 3, 3},
		{"devops-engineer", "docker", 4, 5},
		{"devops-engineer", "kubernetes", 4, 5},
		{"devops-engineer", "terraform", 3, 4},
		{"devops-engineer", "aws", 3, 4},
		{"devops-engineer", "ci-cd", 3, 4},
	}

	for _, it := range items {
		_, err := db.Exec(ctx,
			`INSERT INTO role_skill_requirements (role, skill, required_level, importance)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (role, skill) DO NOTHING`,
			it.Role, it.Skill, it.RequiredLevel, it.Importance,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
