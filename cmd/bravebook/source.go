package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/udisondev/zodiacbuddy/internal/bravebook"
	"github.com/udisondev/zodiacbuddy/internal/config"
	"github.com/udisondev/zodiacbuddy/internal/db"
	"github.com/udisondev/zodiacbuddy/internal/observe"
	"github.com/udisondev/zodiacbuddy/internal/sheet"
)

// openSource opens the configured sheet source.
// The returned close func releases database handles and is never nil.
func openSource(ctx context.Context, cfg config.Source) (sheet.Source, func(), error) {
	switch cfg.Kind {
	case config.SourceYAML:
		return sheet.File{Path: cfg.Path}, func() {}, nil

	case config.SourceSQLite:
		src, err := db.OpenSQLite(ctx, cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		if cfg.AutoMigrate {
			if err := src.Migrate(ctx); err != nil {
				src.Close()
				return nil, nil, fmt.Errorf("migrating sqlite %s: %w", cfg.Path, err)
			}
		}
		return src, func() { src.Close() }, nil

	case config.SourcePostgres:
		dsn := cfg.Database.DSN()
		if cfg.AutoMigrate {
			if err := db.RunMigrations(ctx, dsn); err != nil {
				return nil, nil, err
			}
			slog.Info("database migrations applied")
		}
		database, err := db.New(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("database connected", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)
		return database.Sheets(), database.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
	}
}

// loadDataset opens the source, builds the dataset and records load metrics.
// metrics may be nil for one-shot commands.
func loadDataset(ctx context.Context, cfg config.Source, metrics *observe.Metrics) (*bravebook.Dataset, error) {
	src, closeSrc, err := openSource(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("opening %s source: %w", cfg.Kind, err)
	}
	defer closeSrc()

	start := time.Now()
	ds, err := bravebook.NewLoader(src).Dataset(ctx)
	if err != nil {
		return nil, err
	}
	took := time.Since(start)

	if metrics != nil {
		metrics.RecordDatasetLoad(ctx, cfg.Kind, took, ds.Len())
	}
	slog.Info("brave book dataset ready",
		"source", cfg.Kind,
		"books", ds.Len(),
		"fingerprint", ds.Fingerprint(),
		"took", took.Round(time.Millisecond))
	return ds, nil
}
