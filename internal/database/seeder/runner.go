package seeder

import (
	"context"
	"fmt"
	"log"

	"career-compass/internal/database"
)

type Runner struct {
	Seeders []Seeder
	Logger  *log.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		if r.Logger != nil {
			r.Logger.Printf("seeder=%s status=ok", s.Name())
		}
	}
	return nil
}

// Run applies the schema and reference-data seeders in order. Every seeder is
// idempotent so repeated startups are safe.
func Run(ctx context.Context, db database.DB, logger *log.Logger) error {
	return Runner{Seeders: Defaults(), Logger: logger}.Run(ctx, db)
}
