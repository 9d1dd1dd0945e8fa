// Command genfixture writes a deterministic synthetic postal-code CSV file for
// manual runs and benchmarks of zipextremes. The same flags always produce
// byte-identical output.
//
// Usage:
//
//	go run ./cmd/genfixture -out data/zips.csv -rows 40000 -seed 1 -regions AK,CA,NY
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchcryptid/zip-extremes/internal/fixture"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("genfixture", flag.ContinueOnError)
	out := fs.String("out", "", "output path for the generated CSV file (stdout when empty)")
	rows := fs.Int("rows", 1000, "number of data rows")
	seed := fs.Uint64("seed", 1, "random seed")
	regions := fs.String("regions", "", "comma-separated region keys (default "+strings.Join(fixture.DefaultRegions, ",")+")")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *rows < 0 {
		return fmt.Errorf("-rows must not be negative, got %d", *rows)
	}

	records := fixture.Records(fixture.Options{
		Rows:    *rows,
		Seed:    *seed,
		Regions: splitRegions(*regions),
	})

	if *out == "" {
		return fixture.WriteCSV(stdout, records)
	}
	if err := writeFile(*out, func(w io.Writer) error { return fixture.WriteCSV(w, records) }); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}
	log.Printf("wrote %d records to %s", len(records), *out)
	return nil
}

func splitRegions(s string) []string {
	var out []string
	for _, r := range strings.Split(s, ",") {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close() //nolint:errcheck // already failing with the write error
		return err
	}
	return f.Close()
}
