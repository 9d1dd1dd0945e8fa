package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/zip-extremes/internal/domain"
	"github.com/couchcryptid/zip-extremes/internal/observability"
	"github.com/jonboulle/clockwork"
)

var (
	// ErrOpen wraps any failure to open the input source.
	ErrOpen = errors.New("open source")
	// ErrNoRecords is returned when the source holds no valid records.
	ErrNoRecords = errors.New("no valid records found")
)

// RecordSource yields every parsed record of a file.
type RecordSource interface {
	Open(path string) error
	ReadAll() ([]domain.Record, error)
	Close() error
}

// Result is the outcome of a successful run.
type Result struct {
	Source   string
	Records  int
	Extremes map[string]domain.RegionExtremes
	Duration time.Duration
}

// Pipeline reads a source fully and aggregates the per-region extremes.
type Pipeline struct {
	source  RecordSource
	logger  *slog.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock
}

// New creates a Pipeline. Pass clockwork.NewRealClock() outside of tests.
func New(source RecordSource, logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock) *Pipeline {
	return &Pipeline{
		source:  source,
		logger:  logger,
		metrics: metrics,
		clock:   clock,
	}
}

// Run opens path, reads all of its records, and aggregates them. The source
// is closed before Run returns on every path. Open failures match ErrOpen; a
// source without a single valid record yields ErrNoRecords.
func (p *Pipeline) Run(ctx context.Context, path string) (Result, error) {
	start := p.clock.Now()

	if err := p.source.Open(path); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer func() {
		if err := p.source.Close(); err != nil {
			p.logger.Warn("close source failed", "source", path, "error", err)
		}
	}()
	p.logger.Info("reading records", "source", path)

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	records, err := p.source.ReadAll()
	if err != nil {
		return Result{}, fmt.Errorf("read records: %w", err)
	}
	if len(records) == 0 {
		return Result{}, ErrNoRecords
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	extremes := domain.Aggregate(records)

	elapsed := p.clock.Since(start)
	p.metrics.RegionsAggregated.Set(float64(len(extremes)))
	p.metrics.RunDuration.Observe(elapsed.Seconds())
	p.logger.Info("aggregation complete",
		"source", path,
		"records", len(records),
		"regions", len(extremes),
		"duration", elapsed,
	)

	return Result{
		Source:   path,
		Records:  len(records),
		Extremes: extremes,
		Duration: elapsed,
	}, nil
}
