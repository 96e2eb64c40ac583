package repository

import (
	"context"
	"errors"

	"career-compass/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("profile not found")

type Profile struct {
	UserID     uuid.UUID
	TargetRole string
	Industries []string
}

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	Upsert(ctx context.Context, p Profile) error
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, COALESCE(target_role, ''), COALESCE(industries, '{}')
		 FROM user_profiles WHERE user_id = $1`,
		userID,
	)

	var p Profile
	if err := row.Scan(&p.UserID, &p.TargetRole, &p.Industries); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrProfileNotFound
		}
		return Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, p Profile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_profiles (user_id, target_role, industries)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE SET
			target_role = EXCLUDED.target_role,
			industries = EXCLUDED.industries`,
		p.UserID, p.TargetRole, p.Industries,
	)
	return err
}
