package postgres

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/store/drivers/postgres/migrations"
	"github.com/pressly/goose/v3"
)

// gooseUp is swapped out by tests that run without a database.
var gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
	return goose.UpContext(ctx, db, dir)
}

// ApplyMigrations runs the embedded goose migrations.
func (s *Store) ApplyMigrations() error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return gooseUp(context.Background(), s.db, ".")
}
