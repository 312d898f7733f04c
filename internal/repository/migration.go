// filepath: internal/repository/migration.go
package repository

import (
	"context"
	"fmt"
	"solarapi/internal/db/migrations"
	"solarapi/internal/logging"

	"github.com/pressly/goose/v3"
)

func setupGoose() error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(logging.Log)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

// Migrate runs a goose command ("up", "down" or "status") against the database.
func (s *Repository) Migrate(command string) error {
	if err := setupGoose(); err != nil {
		return err
	}

	var err error
	switch command {
	case "up":
		err = goose.Up(s.DB, migrations.Dir)
	case "down":
		err = goose.Down(s.DB, migrations.Dir)
	case "status":
		err = goose.Status(s.DB, migrations.Dir)
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// EnsureSchemaBootstrapped migrates a fresh database to the latest version.
// A database that already has a goose version table is left alone so that
// upgrades stay an explicit operator action.
func (s *Repository) EnsureSchemaBootstrapped() error {
	var name string
	err := s.DB.QueryRowContext(context.Background(),
		"SELECT name FROM sqlite_master WHERE type='table' AND name='goose_db_version'").Scan(&name)
	if err == nil {
		return nil
	}

	logging.Log.Info("Fresh database detected, applying migrations.")
	return s.Migrate("up")
}

// ValidateSchema returns an error if the database is behind the embedded migrations.
func (s *Repository) ValidateSchema() error {
	if err := setupGoose(); err != nil {
		return err
	}

	current, err := goose.GetDBVersion(s.DB)
	if err != nil {
		return fmt.Errorf("could not read database version: %w", err)
	}

	all, err := goose.CollectMigrations(migrations.Dir, 0, goose.MaxVersion)
	if err != nil {
		return fmt.Errorf("could not collect migrations: %w", err)
	}
	latest, err := all.Last()
	if err != nil {
		return fmt.Errorf("could not determine latest migration: %w", err)
	}

	if current < latest.Version {
		return fmt.Errorf("database schema is outdated (version %d, expected %d); run 'solarapi migrate up'", current, latest.Version)
	}
	return nil
}
