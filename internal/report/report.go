// Package report renders aggregation results as a fixed-width console table.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/couchcryptid/zip-extremes/internal/domain"
)

const separatorWidth = 68

// Banner writes the lines printed before the input is processed.
func Banner(w io.Writer, source string) error {
	_, err := fmt.Fprintf(w, "Reading ZIP code data from: %s\nProcessing records...\n\n", source)
	return err
}

// Summary writes the record total, the results table and the region total.
func Summary(w io.Writer, records int, extremes map[string]domain.RegionExtremes) error {
	if _, err := fmt.Fprintf(w, "Total records read: %d\n\nAnalysis Results:\n=================\n\n", records); err != nil {
		return err
	}
	if err := Table(w, extremes); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nTotal states/territories: %d\n", len(extremes))
	return err
}

// Table writes one row per region, sorted by region key. Codes are padded to
// five digits.
func Table(w io.Writer, extremes map[string]domain.RegionExtremes) error {
	if _, err := fmt.Fprintf(w, "%-8s%-15s%-15s%-15s%-15s\n",
		"State", "Easternmost", "Westernmost", "Northernmost", "Southernmost"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", separatorWidth)); err != nil {
		return err
	}
	for _, region := range domain.SortedRegions(extremes) {
		x := extremes[region]
		if _, err := fmt.Fprintf(w, "%-8s%-15s%-15s%-15s%s\n",
			region,
			code(x.Easternmost),
			code(x.Westernmost),
			code(x.Northernmost),
			code(x.Southernmost),
		); err != nil {
			return err
		}
	}
	return nil
}

func code(e domain.Extreme) string {
	if !e.Seeded() {
		return "-----"
	}
	return fmt.Sprintf("%05d", e.Code())
}
