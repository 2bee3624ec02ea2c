// Command bravebook serves and queries the Trial of the Braves dataset.
//
// Usage:
//
//	bravebook [-config path] serve           # HTTP lookup API
//	bravebook [-config path] books           # list books
//	bravebook [-config path] show <bookID>   # print one book as JSON
//	bravebook [-config path] search <query>  # find targets by name
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
	"strconv"
	"strings"
	"syscall"

	"github.com/udisondev/zodiacbuddy/internal/config"
)

const DefaultConfigPath = "config/bravebook.yaml"

var errUsage = errors.New("usage: bravebook [-config path] serve | books | show <bookID> | search <query>")

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfgPath := DefaultConfigPath
	if p := os.Getenv(config.EnvConfigPath); p != "" {
		cfgPath = p
	}

	fs := flag.NewFlagSet("bravebook", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfgPath, "config", cfgPath, "path to the YAML config")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	cfg, err := config.LoadBraveBook(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", cfgPath, err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	cmd, rest := "serve", []string(nil)
	if fs.NArg() > 0 {
		cmd, rest = fs.Arg(0), fs.Args()[1:]
	}

	switch cmd {
	case "serve":
		return serve(ctx, cfg)
	case "books":
		return listBooks(ctx, cfg, stdout)
	case "show":
		if len(rest) != 1 {
			return errUsage
		}
		id, err := strconv.ParseUint(rest[0], 10, 32)
		if err != nil {
			return fmt.Errorf("book id %q: %w", rest[0], err)
		}
		return showBook(ctx, cfg, uint32(id), stdout)
	case "search":
		if len(rest) == 0 {
			return errUsage
		}
		return search(ctx, cfg, strings.Join(rest, " "), stdout)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
