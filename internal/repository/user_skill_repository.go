package repository

import (
	"context"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

type UserSkill struct {
	UserID           uuid.UUID
	Skill            string
	ProficiencyLevel int
	IsCertified      bool
}

type UserSkillRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error)
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

func (r *PostgresUserSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, skill, COALESCE(proficiency_level, 0), COALESCE(is_certified, false)
		 FROM user_skills
		 WHERE user_id = $1
		 ORDER BY skill ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserSkill, 0)
	for rows.Next() {
		var us UserSkill
		if err := rows.Scan(&us.UserID, &us.Skill, &us.ProficiencyLevel, &us.IsCertified); err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
