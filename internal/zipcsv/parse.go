package zipcsv

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/couchcryptid/zip-extremes/internal/domain"
)

const (
	fieldCount = 6
	cutset     = " \t\r\n"
)

// SplitLine splits a line on commas that are not inside quotes. Each '"'
// toggles the quoted state and is dropped from the field, so a doubled quote
// ("") is not restored to a literal quote. Fields are trimmed of spaces, tabs,
// carriage returns and newlines.
func SplitLine(line string) []string {
	var (
		fields   []string
		field    strings.Builder
		inQuotes bool
	)
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, trim(field.String()))
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}
	return append(fields, trim(field.String()))
}

// ParseLine converts one data line into a Record. It fails with an error
// matching ErrMalformedLine when the line does not hold exactly six fields or
// a numeric field does not convert.
func ParseLine(line string) (domain.Record, error) {
	fields := SplitLine(line)
	if len(fields) != fieldCount {
		return domain.Record{}, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), fieldCount)
	}

	code, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return domain.Record{}, fmt.Errorf("%w %q", ErrInvalidCode, fields[0])
	}
	lat, err := parseCoordinate(fields[4])
	if err != nil {
		return domain.Record{}, fmt.Errorf("latitude: %w", err)
	}
	lon, err := parseCoordinate(fields[5])
	if err != nil {
		return domain.Record{}, fmt.Errorf("longitude: %w", err)
	}

	return domain.Record{
		Code:      uint32(code),
		Place:     fields[1],
		Region:    fields[2],
		Subregion: fields[3],
		Latitude:  lat,
		Longitude: lon,
	}, nil
}

// parseCoordinate rejects NaN and infinities, which would make extreme
// comparisons order-dependent.
func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w %q", ErrInvalidCoordinate, s)
	}
	return v, nil
}

func trim(s string) string {
	return strings.Trim(s, cutset)
}

func isBlank(line string) bool {
	return trim(line) == ""
}
