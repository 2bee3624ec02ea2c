// Package observe provides the OpenTelemetry metrics and tracing of the brave
// book service, and the HTTP middleware that ties them to request logging.
//
// Metrics are exported through a Prometheus bridge set up by [InitProvider].
// Tests should use [NewMetrics] with their own [metric.MeterProvider].
package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope of every metric of the service.
const meterName = "github.com/udisondev/zodiacbuddy"

// Lookup statuses recorded on BookLookups.
const (
	StatusFound    = "found"
	StatusNotFound = "not_found"
	StatusError    = "error"
)

// Metrics holds all OpenTelemetry instruments of the service.
// Safe for concurrent use.
type Metrics struct {
	// DatasetLoadDuration tracks how long loading sheets and building the
	// dataset took. Attribute: source.
	DatasetLoadDuration metric.Float64Histogram

	// BooksLoaded is the number of books in the current dataset.
	BooksLoaded metric.Int64Gauge

	// BookLookups counts book lookups by status (found, not_found, error).
	BookLookups metric.Int64Counter

	// TargetSearches counts target searches. Attribute: matched (bool).
	TargetSearches metric.Int64Counter

	// HTTPRequestDuration tracks request processing time by method, route and status.
	HTTPRequestDuration metric.Float64Histogram
}

// loadBuckets in seconds. Loading from PostgreSQL over the network is the slow end.
var loadBuckets = []float64{
	0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5,
}

// NewMetrics creates all instruments on the given provider.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.DatasetLoadDuration, err = m.Float64Histogram("bravebook.dataset.load.duration",
		metric.WithDescription("Time spent loading sheets and building the brave book dataset."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(loadBuckets...),
	); err != nil {
		return nil, err
	}
	if met.BooksLoaded, err = m.Int64Gauge("bravebook.books.loaded",
		metric.WithDescription("Number of books in the loaded dataset."),
	); err != nil {
		return nil, err
	}
	if met.BookLookups, err = m.Int64Counter("bravebook.book.lookups",
		metric.WithDescription("Book lookups by status."),
	); err != nil {
		return nil, err
	}
	if met.TargetSearches, err = m.Int64Counter("bravebook.target.searches",
		metric.WithDescription("Target name searches by whether anything matched."),
	); err != nil {
		return nil, err
	}
	if met.HTTPRequestDuration, err = m.Float64Histogram("bravebook.http.request.duration",
		metric.WithDescription("HTTP request latency by method, route and status."),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// RecordDatasetLoad records a finished dataset load of the given source kind.
func (m *Metrics) RecordDatasetLoad(ctx context.Context, source string, took time.Duration, books int) {
	m.DatasetLoadDuration.Record(ctx, took.Seconds(),
		metric.WithAttributes(attribute.String("source", source)),
	)
	m.BooksLoaded.Record(ctx, int64(books))
}

// RecordBookLookup increments the lookup counter for status.
func (m *Metrics) RecordBookLookup(ctx context.Context, status string) {
	m.BookLookups.Add(ctx, 1,
		metric.WithAttributes(attribute.String("status", status)),
	)
}

// RecordTargetSearch increments the search counter.
func (m *Metrics) RecordTargetSearch(ctx context.Context, matched bool) {
	m.TargetSearches.Add(ctx, 1,
		metric.WithAttributes(attribute.Bool("matched", matched)),
	)
}
