package testutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/udisondev/zodiacbuddy/internal/sheet"
)

// ErrSimulated is returned by fake sources to exercise error paths.
var ErrSimulated = errors.New("simulated error for testing")

// ContextWithTimeout создаёт context с timeout и отменяет его при завершении теста.
func ContextWithTimeout(tb testing.TB, d time.Duration) context.Context {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), d)
	tb.Cleanup(cancel)
	return ctx
}

// CanceledContext returns a context that is already cancelled.
func CanceledContext(tb testing.TB) context.Context {
	tb.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

// WriteExport encodes s as a YAML sheet export in a temp dir and returns its path.
func WriteExport(tb testing.TB, s *sheet.Sheets) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "sheets.yaml")
	f, err := os.Create(path)
	if err != nil {
		tb.Fatalf("creating export: %v", err)
	}
	defer f.Close()

	if err := sheet.EncodeYAML(f, s); err != nil {
		tb.Fatalf("writing export: %v", err)
	}
	return path
}
