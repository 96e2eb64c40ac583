package repository

import (
	"context"

	"career-compass/internal/database"
)

type RoleSalaryRepository interface {
	SalariesByRoles(ctx context.Context, roles []string) (map[string]float64, error)
}

type PostgresRoleSalaryRepository struct {
	db database.DB
}

func NewPostgresRoleSalaryRepository(db database.DB) *PostgresRoleSalaryRepository {
	return &PostgresRoleSalaryRepository{db: db}
}

// SalariesByRoles returns the reference salary for each known role. Roles
// without a reference row are simply absent; callers default them to 0.
func (r *PostgresRoleSalaryRepository) SalariesByRoles(ctx context.Context, roles []string) (map[string]float64, error) {
	out := map[string]float64{}
	if len(roles) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT role, annual_salary FROM role_salaries WHERE role = ANY($1)`,
		roles,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var role string
		var salary float64
		if err := rows.Scan(&role, &salary); err != nil {
			return nil, err
		}
		out[role] = salary
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
