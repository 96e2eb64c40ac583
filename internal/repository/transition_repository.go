package repository

import (
	"context"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

type CareerTransition struct {
	UserID            uuid.UUID
	FromRole          string
	ToRole            string
	YearsToTransition float64
}

type TransitionRepository interface {
	FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]CareerTransition, error)
}

type PostgresTransitionRepository struct {
	db database.DB
}

func NewPostgresTransitionRepository(db database.DB) *PostgresTransitionRepository {
	return &PostgresTransitionRepository{db: db}
}

func (r *PostgresTransitionRepository) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]CareerTransition, error) {
	if len(userIDs) == 0 {
		return []CareerTransition{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT user_id, from_role, to_role, years_to_transition
		 FROM career_transitions
		 WHERE user_id = ANY($1)
		 ORDER BY created_at ASC, id ASC`,
		userIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CareerTransition, 0)
	for rows.Next() {
		var t CareerTransition
		if err := rows.Scan(&t.UserID, &t.FromRole, &t.ToRole, &t.YearsToTransition); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
