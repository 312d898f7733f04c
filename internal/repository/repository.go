// filepath: internal/repository/repository.go
package repository

import (
	"database/sql"
	"fmt"
	"solarapi/internal/config"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite" // SQLite driver (registers "sqlite")
)

// Repository provides access to the service's sqlite database.
type Repository struct {
	DB      *sql.DB
	Builder squirrel.StatementBuilderType // SQL Query Builder
}

// NewRepository opens the sqlite database configured in cfg.
func NewRepository(cfg *config.Config) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.Database.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		DB:      db,
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

// Close closes the database connection.
func (s *Repository) Close() error {
	return s.DB.Close()
}
