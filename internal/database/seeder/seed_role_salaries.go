package seeder

import (
	"context"

	"career-compass/internal/database"
)

type RoleSalariesSeeder struct{}

func (RoleSalariesSeeder) Name() string { return "role_salaries" }

func (RoleSalariesSeeder) Run(ctx context.Context, db database.DB) error {
	items := []struct {
		Role   string
		Salary float64
	}{
		{"software-engineer", 95000},
		{"senior-engineer", 135000},
		{"staff-engineer", 175000},
		{"engineering-manager", 165000},
		{"data-analyst", 85000},
		{"data-scientist", 125000},
		{"devops-engineer", 120000},
	}

	for _, it := range items {
		_, err := db.Exec(ctx,
			`INSERT INTO role_salaries (role, annual_salary)
			 VALUES ($1, $2)
			 ON CONFLICT (role) DO NOTHING`,
			it.Role, it.Salary,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
