package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate применяет встроенные *.up.sql по порядку имен.
// Примененные версии хранятся в schema_migrations, каждая миграция идет в своей транзакции.
func Migrate(ctx context.Context, db *sqlx.DB, logger *slog.Logger) error {
	logger = logger.With(slog.String("component", "migrate"))

	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	names, err := fs.Glob(migrations, "migrations/*.up.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	slices.Sort(names)

	for _, path := range names {
		version := strings.TrimPrefix(path, "migrations/")

		var applied bool
		err := db.GetContext(ctx, &applied,
			"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)", version)
		if err != nil {
			return fmt.Errorf("failed to check migration %s: %w", version, err)
		}
		if applied {
			continue
		}

		content, err := migrations.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", version, err)
		}

		if err := apply(ctx, db, version, string(content)); err != nil {
			return err
		}
		logger.Info("migration applied", slog.String("version", version))
	}

	return nil
}

func apply(ctx context.Context, db *sqlx.DB, version, content string) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx for migration %s: %w", version, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, content); err != nil {
		return fmt.Errorf("failed to execute migration %s: %w", version, err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", version); err != nil {
		return fmt.Errorf("failed to record migration %s: %w", version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %s: %w", version, err)
	}
	return nil
}
