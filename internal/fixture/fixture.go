// Package fixture generates deterministic synthetic postal-code data for
// tests and manual runs.
package fixture

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/couchcryptid/zip-extremes/internal/domain"
)

// Header is the column row written at the top of every generated file.
var Header = []string{"ZipCode", "PlaceName", "State", "County", "Lat", "Long"}

// DefaultRegions is used when Options.Regions is empty.
var DefaultRegions = []string{"AK", "CA", "NY", "TX", "WY"}

// places includes names with embedded commas so generated files exercise
// quoted-field splitting.
var places = []string{
	"Anchorage",
	"Fort Worth, TX",
	"Los Angeles",
	"New York, NY",
	"Cheyenne",
	"Saint Paul",
	"Washington, D.C.",
}

// Options controls generation.
type Options struct {
	Rows    int
	Seed    uint64
	Regions []string
}

// Records builds opts.Rows pseudo-random records. The same options always
// produce the same records. Coordinates are rounded to two decimals so that
// coordinate ties are common.
func Records(opts Options) []domain.Record {
	regions := opts.Regions
	if len(regions) == 0 {
		regions = DefaultRegions
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	out := make([]domain.Record, 0, max(opts.Rows, 0))
	for range opts.Rows {
		out = append(out, domain.Record{
			Code:      uint32(rng.IntN(99950) + 1),
			Place:     places[rng.IntN(len(places))],
			Region:    regions[rng.IntN(len(regions))],
			Subregion: fmt.Sprintf("County %d", rng.IntN(20)+1),
			Latitude:  round2(18 + rng.Float64()*53),
			Longitude: round2(-180 + rng.Float64()*115),
		})
	}
	return out
}

// WriteCSV writes Header followed by one row per record. Codes are padded to
// five digits the way source files encode them.
func WriteCSV(w io.Writer, records []domain.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range records {
		r := &records[i]
		row := []string{
			fmt.Sprintf("%05d", r.Code),
			r.Place,
			r.Region,
			r.Subregion,
			strconv.FormatFloat(r.Latitude, 'f', -1, 64),
			strconv.FormatFloat(r.Longitude, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
