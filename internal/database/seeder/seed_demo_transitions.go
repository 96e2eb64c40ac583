package seeder

import (
	"context"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

// DemoTransitionsSeeder plants a small population of demo users with career
// history so predictions return something on a fresh install. Demo accounts
// carry an invalid password hash and cannot be logged into.
type DemoTransitionsSeeder struct{}

func (DemoTransitionsSeeder) Name() string { return "demo_transitions" }

type demoUser struct {
	email       string
	targetRole  string
	skills      map[string]int
	transitions []demoTransition
}

type demoTransition struct {
	fromRole string
	toRole   string
	years    float64
}

var demoUsers = []demoUser{
	{
		email:      "demo-alia@career-compass.local",
		targetRole: "senior-engineer",
		skills:     map[string]int{"javascript": 4, "react": 4, "sql": 3},
		transitions: []demoTransition{
			{"software-engineer", "senior-engineer", 3},
		},
	},
	{
		email:      "demo-bram@career-compass.local",
		targetRole: "staff-engineer",
		skills:     map[string]int{"go": 4, "system-design": 4, "kubernetes": 3},
		transitions: []demoTransition{
			{"software-engineer", "senior-engineer", 4},
			{"senior-engineer", "staff-engineer", 3},
		},
	},
	{
		email:      "demo-cita@career-compass.local",
		targetRole: "engineering-manager",
		skills:     map[string]int{"javascript": 3, "leadership": 4, "system-design": 3},
		transitions: []demoTransition{
			{"senior-engineer", "engineering-manager", 2},
		},
	},
	{
		email:      "demo-dewi@career-compass.local",
		targetRole: "data-scientist",
		skills:     map[string]int{"python": 4, "machine-learning": 3, "sql": 4},
		transitions: []demoTransition{
			{"data-analyst", "data-scientist", 3},
		},
	},
}

func (DemoTransitionsSeeder) Run(ctx context.Context, db database.DB) error {
	for _, du := range demoUsers {
		id, err := ensureDemoUser(ctx, db, du.email)
		if err != nil {
			return err
		}

		_, err = db.Exec(ctx,
			`INSERT INTO user_profiles (user_id, target_role, industries)
			 VALUES ($1, $2, ARRAY['technology'])
			 ON CONFLICT (user_id) DO NOTHING`,
			id, du.targetRole,
		)
		if err != nil {
			return err
		}

		for skill, level := range du.skills {
			_, err = db.Exec(ctx,
				`INSERT INTO user_skills (user_id, skill, proficiency_level)
				 VALUES ($1, $2, $3)
				 ON CONFLICT (user_id, skill) DO NOTHING`,
				id, skill, level,
			)
			if err != nil {
				return err
			}
		}

		for _, tr := range du.transitions {
			affected, err := db.Exec(ctx,
				`INSERT INTO career_transitions (user_id, from_role, to_role, years_to_transition)
				 SELECT $1, $2, $3, $4
				 WHERE NOT EXISTS (
					SELECT 1 FROM career_transitions
					WHERE user_id = $1 AND from_role = $2 AND to_role = $3
				 )`,
				id, tr.fromRole, tr.toRole, tr.years,
			)
			if err != nil {
				return err
			}
			_ = affected
		}
	}
	return nil
}

func ensureDemoUser(ctx context.Context, db database.DB, email string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&id)
	if err == nil {
		return id, nil
	}

	id = uuid.New()
	_, err = db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash)
		 VALUES ($1, $2, '!demo-account-no-login')
		 ON CONFLICT (email) DO NOTHING`,
		id, email,
	)
	if err != nil {
		return uuid.Nil, err
	}

	// Re-read in case a concurrent seeder won the insert.
	if err := db.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
