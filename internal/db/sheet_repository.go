package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/zodiacbuddy/internal/sheet"
)

// SheetRepository — sheet.Source поверх PostgreSQL.
type SheetRepository struct {
	db *pgxpool.Pool
}

// NewSheetRepository creates a new SheetRepository.
func NewSheetRepository(db *pgxpool.Pool) *SheetRepository {
	return &SheetRepository{db: db}
}

// Load reads every sheet table. Tables are queried concurrently on the pool.
func (r *SheetRepository) Load(ctx context.Context) (*sheet.Sheets, error) {
	s, err := loadSheets(ctx, func(ctx context.Context, query string) (rowScanner, func(), error) {
		rows, err := r.db.Query(ctx, query)
		if err != nil {
			return nil, nil, err
		}
		return rows, rows.Close, nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading sheets from postgres: %w", err)
	}
	return s, nil
}

// Import replaces all sheet rows with s in a single transaction.
func (r *SheetRepository) Import(ctx context.Context, s *sheet.Sheets) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning import transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Warn("rolling back sheet import", "err", err)
		}
	}()

	exec := func(ctx context.Context, query string, args ...any) error {
		_, err := tx.Exec(ctx, query, args...)
		return err
	}
	if err := importSheets(ctx, exec, dollarPlaceholder, s); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing sheet import: %w", err)
	}

	slog.Info("sheets imported", "backend", "postgres", "relic_notes", s.RelicNotes.Len())
	return nil
}
