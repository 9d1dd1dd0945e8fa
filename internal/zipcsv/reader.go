// Package zipcsv reads postal-code records from a delimited text file with a
// single header line.
package zipcsv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/couchcryptid/zip-extremes/internal/domain"
	"github.com/couchcryptid/zip-extremes/internal/observability"
)

// Reader provides sequential, restartable access to the records of one
// source file. The header line is skipped on Open and on every Reset.
// A Reader is not safe for concurrent use.
type Reader struct {
	file    *os.File
	buf     *bufio.Reader
	name    string
	line    int // lines consumed, header included
	count   int
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewReader creates a Reader with no source open.
func NewReader(logger *slog.Logger, metrics *observability.Metrics) *Reader {
	return &Reader{logger: logger, metrics: metrics}
}

// Open opens path and consumes its header line. Any source already open is
// closed first. The returned error matches ErrOpen when the file is missing,
// unreadable or empty; no file handle is retained in that case.
func (r *Reader) Open(path string) error {
	if err := r.Close(); err != nil {
		r.logger.Warn("close previous source failed", "error", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrOpen, path, err)
	}
	r.file = f
	r.buf = bufio.NewReader(f)
	r.name = path

	if err := r.skipHeader(); err != nil {
		r.Close() //nolint:errcheck // already failing with the header error
		return fmt.Errorf("%w %q: %w", ErrOpen, path, err)
	}

	r.logger.Debug("source opened", "source", path)
	return nil
}

// Close releases the source and clears all read state. It is safe to call
// on a Reader with nothing open.
func (r *Reader) Close() error {
	var err error
	if r.file != nil {
		err = r.file.Close()
	}
	r.file = nil
	r.buf = nil
	r.name = ""
	r.line = 0
	r.count = 0
	return err
}

// IsOpen reports whether a source is currently held open.
func (r *Reader) IsOpen() bool {
	return r.file != nil
}

// ReadNext returns the next record. Blank lines are skipped silently.
//
// At end of input it returns io.EOF. A malformed line yields a *ParseError
// matching ErrMalformedLine; the line is consumed, so calling ReadNext again
// continues with the following line.
func (r *Reader) ReadNext() (domain.Record, error) {
	if r.file == nil {
		return domain.Record{}, ErrNotOpen
	}
	for {
		line, err := r.readLine()
		if err != nil {
			return domain.Record{}, err
		}
		if isBlank(line) {
			continue
		}

		rec, err := ParseLine(line)
		if err != nil {
			return domain.Record{}, &ParseError{Line: r.line, Err: err}
		}
		r.count++
		r.metrics.RecordsParsed.Inc()
		return rec, nil
	}
}

// ReadAll rewinds to the first data line and collects every record, skipping
// malformed lines. Afterwards the source is rewound again so it can be
// iterated anew.
func (r *Reader) ReadAll() ([]domain.Record, error) {
	if err := r.Reset(); err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0)
	for {
		rec, err := r.ReadNext()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *ParseError
		if errors.As(err, &perr) {
			r.logger.Warn("skipping malformed line",
				"source", r.name,
				"line", perr.Line,
				"error", perr.Err,
			)
			r.metrics.LinesSkipped.WithLabelValues(reason(perr.Err)).Inc()
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := r.Reset(); err != nil {
		return nil, err
	}
	return records, nil
}

// Reset seeks back to the start of the source, skips the header again and
// zeroes the record count.
func (r *Reader) Reset() error {
	if r.file == nil {
		return ErrNotOpen
	}
	if _, err := r.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("reset %s: %w", r.name, err)
	}
	r.buf.Reset(r.file)
	return r.skipHeader()
}

// RecordCount returns the number of records read since the last Open or Reset.
func (r *Reader) RecordCount() int {
	return r.count
}

// SourceName returns the path of the open source, or "" when none is open.
func (r *Reader) SourceName() string {
	return r.name
}

func (r *Reader) skipHeader() error {
	r.line = 0
	r.count = 0
	if _, err := r.readLine(); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptySource
		}
		return err
	}
	return nil
}

// readLine returns the next line including its terminator. A final line
// without a newline is returned normally; io.EOF is only returned once no
// bytes remain.
func (r *Reader) readLine() (string, error) {
	line, err := r.buf.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read %s: %w", r.name, err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	r.line++
	return line, nil
}
