// Command zipextremes reports, for every state in a postal-code CSV file, the
// easternmost, westernmost, northernmost and southernmost ZIP codes.
//
// Usage:
//
//	zipextremes <csv_filename>
//
// Exit codes: 0 success, 1 usage or configuration error, 2 the file could not
// be opened, 3 the file held no valid records, 4 reading the file failed.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/zip-extremes/internal/config"
	"github.com/couchcryptid/zip-extremes/internal/observability"
	"github.com/couchcryptid/zip-extremes/internal/pipeline"
	"github.com/couchcryptid/zip-extremes/internal/report"
	"github.com/couchcryptid/zip-extremes/internal/zipcsv"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	exitOK        = 0
	exitUsage     = 1
	exitOpen      = 2
	exitNoRecords = 3
	exitRead      = 4
)

const progName = "zipextremes"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		prog := progName
		if len(args) > 0 && args[0] != "" {
			prog = args[0]
		}
		fmt.Fprintf(stderr, "Usage: %s <csv_filename>\n", prog)
		fmt.Fprintf(stderr, "Example: %s us_postal_codes.csv\n", prog)
		return exitUsage
	}
	path := args[1]

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return exitUsage
	}

	logger := observability.NewLogger(cfg).With("run_id", uuid.NewString())
	reg := observability.NewRegistry()
	metrics := observability.NewMetrics(reg)

	reader := zipcsv.NewReader(logger, metrics)
	code := analyze(ctx, reader, path, stdout, stderr, logger, metrics)

	if cfg.MetricsTextfile != "" {
		writeMetrics(cfg.MetricsTextfile, reg, logger)
	}
	return code
}

func analyze(ctx context.Context, src pipeline.RecordSource, path string, stdout, stderr io.Writer, logger *slog.Logger, metrics *observability.Metrics) int {
	p := pipeline.New(src, logger, metrics, clockwork.NewRealClock())

	res, err := p.Run(ctx, path)
	switch {
	case errors.Is(err, pipeline.ErrOpen):
		logger.Error("open failed", "error", err)
		fmt.Fprintf(stderr, "Error: Could not open file '%s'\n", path)
		fmt.Fprintln(stderr, "Please check that the file exists and is readable.")
		return exitOpen
	case errors.Is(err, pipeline.ErrNoRecords):
		printOrLog(report.Banner(stdout, path), logger)
		fmt.Fprintln(stderr, "Error: No valid records found in file.")
		return exitNoRecords
	case err != nil:
		logger.Error("run failed", "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitRead
	}

	printOrLog(report.Banner(stdout, path), logger)
	printOrLog(report.Summary(stdout, res.Records, res.Extremes), logger)
	return exitOK
}

func printOrLog(err error, logger *slog.Logger) {
	if err != nil {
		logger.Error("write report failed", "error", err)
	}
}

func writeMetrics(path string, g prometheus.Gatherer, logger *slog.Logger) {
	if err := observability.WriteTextfile(path, g); err != nil {
		logger.Warn("write metrics textfile failed", "path", path, "error", err)
		return
	}
	logger.Debug("metrics written", "path", path)
}
