// Command sheetimport copies sheet rows between a YAML export and the
// database configured as the brave book source.
//
// Usage:
//
//	sheetimport [-config path] import <export.yaml>   # YAML -> sqlite/postgres
//	sheetimport [-config path] export <export.yaml>   # sqlite/postgres -> YAML
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/zodiacbuddy/internal/config"
	"github.com/udisondev/zodiacbuddy/internal/db"
	"github.com/udisondev/zodiacbuddy/internal/sheet"
)

const DefaultConfigPath = "config/bravebook.yaml"

var errUsage = errors.New("usage: sheetimport [-config path] import|export <export.yaml>")

// store is a database the sheets can be written to and read back from.
type store interface {
	sheet.Source
	Import(ctx context.Context, s *sheet.Sheets) error
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("interrupted", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfgPath := DefaultConfigPath
	if p := os.Getenv(config.EnvConfigPath); p != "" {
		cfgPath = p
	}

	fs := flag.NewFlagSet("sheetimport", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfgPath, "config", cfgPath, "path to the YAML config")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() != 2 {
		return errUsage
	}
	cmd, file := fs.Arg(0), fs.Arg(1)

	cfg, err := config.LoadBraveBook(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	switch cmd {
	case "import", "export":
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}

	st, closeStore, err := openStore(ctx, cfg.Source)
	if err != nil {
		return err
	}
	defer closeStore()

	if cmd == "import" {
		return importFile(ctx, st, file)
	}
	return exportFile(ctx, st, file)
}

// openStore opens and migrates the configured database. Schema migrations
// always run here, auto_migrate only applies to the server.
func openStore(ctx context.Context, cfg config.Source) (store, func(), error) {
	switch cfg.Kind {
	case config.SourceSQLite:
		if cfg.Path == "" {
			return nil, nil, errors.New("source.path is required for sqlite")
		}
		src, err := db.OpenSQLite(ctx, cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		if err := src.Migrate(ctx); err != nil {
			src.Close()
			return nil, nil, err
		}
		return src, func() { src.Close() }, nil

	case config.SourcePostgres:
		dsn := cfg.Database.DSN()
		if err := db.RunMigrations(ctx, dsn); err != nil {
			return nil, nil, err
		}
		database, err := db.New(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}
		return database.Sheets(), database.Close, nil

	default:
		return nil, nil, fmt.Errorf("source.kind %q is not a database", cfg.Kind)
	}
}

func importFile(ctx context.Context, st store, path string) error {
	s, err := sheet.File{Path: path}.Load(ctx)
	if err != nil {
		return err
	}
	if err := st.Import(ctx, s); err != nil {
		return fmt.Errorf("importing %s: %w", path, err)
	}
	slog.Info("import finished", "file", path, "relic_notes", s.RelicNotes.Len())
	return nil
}

func exportFile(ctx context.Context, st store, path string) error {
	s, err := st.Load(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := sheet.EncodeYAML(f, s); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	slog.Info("export finished", "file", path, "relic_notes", s.RelicNotes.Len())
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
