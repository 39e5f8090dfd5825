package seeder

import (
	"context"

	"hr-registry/internal/database"

	"github.com/rs/zerolog"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// RunAll executes every registered seeder in order. Seeders are
// idempotent; they skip work that has already been done.
func RunAll(ctx context.Context, db database.DB, logger zerolog.Logger) error {
	seeders := []Seeder{
		AdminSeeder{},
		SkillSeeder{},
	}

	for _, s := range seeders {
		if err := s.Run(ctx, db); err != nil {
			logger.Error().Err(err).Str("seeder", s.Name()).Msg("seeder failed")
			return err
		}
		logger.Debug().Str("seeder", s.Name()).Msg("seeder done")
	}
	return nil
}
