package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"openblog-backend/migrations"
)

// Migrate applies the embedded schema. Every statement is written with
// IF NOT EXISTS so repeated startups are no-ops.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	if _, err := db.Pool.Exec(ctx, migrations.Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	log.Info().Msg("database schema up to date")
	return nil
}
