package migration

import (
	"context"

	"oceanquery/internal/errors"

	"github.com/jmoiron/sqlx"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createQueriesTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create queries table")
	}

	if err := r.createSavedQueriesTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create saved_queries table")
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	return nil
}

func (r *MigrationRunner) createQueriesTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS queries (
			id UUID PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL DEFAULT 'anonymous',
			message TEXT NOT NULL,
			intent VARCHAR(32) NOT NULL,
			has_visualizations BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createSavedQueriesTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS saved_queries (
			id UUID PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL DEFAULT 'anonymous',
			query TEXT NOT NULL,
			saved_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_queries_created_at ON queries(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_queries_intent ON queries(intent)`,
		`CREATE INDEX IF NOT EXISTS idx_saved_queries_user ON saved_queries(user_id, saved_at DESC)`,
	}

	for _, stmt := range indexes {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
