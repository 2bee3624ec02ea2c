package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"

	"github.com/udisondev/zodiacbuddy/internal/sheet"
)

// SQLiteSource — sheet.Source поверх локального файла SQLite.
// Use a file path: an in-memory database is private to a single connection
// and Load queries on several connections at once.
type SQLiteSource struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens the SQLite database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteSource, error) {
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %s: %w", path, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging sqlite %s: %w", path, err)
	}
	return &SQLiteSource{db: sqlDB, path: path}, nil
}

// Close closes the database.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// Migrate creates or upgrades the sheet schema.
func (s *SQLiteSource) Migrate(ctx context.Context) error {
	return Migrate(ctx, s.db, DialectSQLite)
}

// Load reads every sheet table.
func (s *SQLiteSource) Load(ctx context.Context) (*sheet.Sheets, error) {
	sheets, err := loadSheets(ctx, func(ctx context.Context, query string) (rowScanner, func(), error) {
		rows, err := s.db.QueryContext(ctx, query)
		if err != nil {
			return nil, nil, err
		}
		return rows, func() { rows.Close() }, nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading sheets from sqlite %s: %w", s.path, err)
	}
	return sheets, nil
}

// Import replaces all sheet rows with sheets in a single transaction.
func (s *SQLiteSource) Import(ctx context.Context, sheets *sheet.Sheets) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning import transaction: %w", err)
	}
	defer tx.Rollback()

	exec := func(ctx context.Context, query string, args ...any) error {
		_, err := tx.ExecContext(ctx, query, args...)
		return err
	}
	if err := importSheets(ctx, exec, questionPlaceholder, sheets); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing sheet import: %w", err)
	}

	slog.Info("sheets imported", "backend", "sqlite", "path", s.path, "relic_notes", sheets.RelicNotes.Len())
	return nil
}
