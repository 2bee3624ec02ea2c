package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/zodiacbuddy/internal/api"
	"github.com/udisondev/zodiacbuddy/internal/config"
	"github.com/udisondev/zodiacbuddy/internal/observe"
)

// serve loads the dataset and runs the HTTP API until ctx is cancelled.
func serve(ctx context.Context, cfg config.BraveBook) error {
	var gatherer prometheus.Gatherer
	if cfg.Metrics.Enabled {
		shutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{ServiceName: cfg.Metrics.ServiceName})
		if err != nil {
			return fmt.Errorf("initialising metrics: %w", err)
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
			defer cancel()
			if err := shutdown(sctx); err != nil {
				slog.Warn("metrics shutdown", "err", err)
			}
		}()
		gatherer = prometheus.DefaultGatherer
	}

	metrics, err := observe.NewMetrics(otel.GetMeterProvider())
	if err != nil {
		return fmt.Errorf("creating metrics: %w", err)
	}

	ds, err := loadDataset(ctx, cfg.Source, metrics)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      api.NewServer(ds, metrics, gatherer).Routes(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("http server listening", "addr", srv.Addr, "metrics", cfg.Metrics.Enabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		slog.Info("http server stopped")
		return nil
	})

	return g.Wait()
}

func listBooks(ctx context.Context, cfg config.BraveBook, w io.Writer) error {
	ds, err := loadDataset(ctx, cfg.Source, nil)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tENEMIES\tDUNGEONS\tFATES\tLEVES")
	for _, id := range ds.BookIDs() {
		b, err := ds.GetValue(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\n",
			id, b.Name, len(b.Enemies), len(b.Dungeons), len(b.Fates), len(b.Leves))
	}
	return tw.Flush()
}

func showBook(ctx context.Context, cfg config.BraveBook, id uint32, w io.Writer) error {
	ds, err := loadDataset(ctx, cfg.Source, nil)
	if err != nil {
		return err
	}

	book, err := ds.GetValue(id)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(book)
}

func search(ctx context.Context, cfg config.BraveBook, query string, w io.Writer) error {
	ds, err := loadDataset(ctx, cfg.Source, nil)
	if err != nil {
		return err
	}

	matches := ds.FindTargets(query, 0)
	if len(matches) == 0 {
		fmt.Fprintf(w, "no targets match %q\n", query)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tBOOK\tKIND\tTARGET\tZONE\tPOSITION")
	for _, m := range matches {
		fmt.Fprintf(tw, "%.2f\t%s\t%s\t%s\t%s\t%s\n",
			m.Score, m.BookName, m.KindName, m.Target.Name, m.Target.ZoneName, m.Target.Position)
	}
	return tw.Flush()
}
