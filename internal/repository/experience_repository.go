package repository

import (
	"context"
	"time"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

type Experience struct {
	UserID    uuid.UUID
	Role      string
	StartedAt time.Time
	EndedAt   *time.Time
}

type ExperienceRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Experience, error)
}

type PostgresExperienceRepository struct {
	db database.DB
}

func NewPostgresExperienceRepository(db database.DB) *PostgresExperienceRepository {
	return &PostgresExperienceRepository{db: db}
}

func (r *PostgresExperienceRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]Experience, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, role, started_at, ended_at
		 FROM user_experiences
		 WHERE user_id = $1
		 ORDER BY started_at ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Experience, 0)
	for rows.Next() {
		var e Experience
		if err := rows.Scan(&e.UserID, &e.Role, &e.StartedAt, &e.EndedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
