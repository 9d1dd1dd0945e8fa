package zipcsv

import (
	"errors"
	"fmt"
)

var (
	// ErrOpen is returned by Open when the source cannot be used.
	ErrOpen = errors.New("zipcsv: cannot open source")
	// ErrEmptySource is wrapped by ErrOpen when the source has no header line.
	ErrEmptySource = errors.New("zipcsv: source is empty")
	// ErrNotOpen is returned by operations that need an open source.
	ErrNotOpen = errors.New("zipcsv: no source open")

	// ErrMalformedLine is matched by every per-line parse failure.
	ErrMalformedLine = errors.New("zipcsv: malformed line")
	// ErrFieldCount is returned when a line does not split into exactly six fields.
	ErrFieldCount = fmt.Errorf("%w: wrong number of fields", ErrMalformedLine)
	// ErrInvalidCode is returned when the code field is not a non-negative integer.
	ErrInvalidCode = fmt.Errorf("%w: invalid code", ErrMalformedLine)
	// ErrInvalidCoordinate is returned when latitude or longitude is not a finite number.
	ErrInvalidCoordinate = fmt.Errorf("%w: invalid coordinate", ErrMalformedLine)
)

// ParseError reports a malformed line. The reader has already moved past the
// line, so reading may continue.
type ParseError struct {
	Line int // 1-based, counting the header
	Err  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("zipcsv: line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Is.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// reason maps a parse failure to a short metric label.
func reason(err error) string {
	switch {
	case errors.Is(err, ErrFieldCount):
		return "field_count"
	case errors.Is(err, ErrInvalidCode):
		return "code"
	case errors.Is(err, ErrInvalidCoordinate):
		return "coordinate"
	default:
		return "other"
	}
}
