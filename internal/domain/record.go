package domain

// Record is one parsed input row describing a single postal code.
// Values are never partially populated; a row that fails validation
// produces no Record at all.
type Record struct {
	Code      uint32
	Place     string
	Region    string
	Subregion string
	Latitude  float64
	Longitude float64
}

// Extreme is the running winner for one tracked direction. The zero value is
// empty: it has not yet seen a record, so the first candidate always wins.
type Extreme struct {
	set   bool
	code  uint32
	value float64
}

// Seeded reports whether the extreme holds a record.
func (e Extreme) Seeded() bool { return e.set }

// Code returns the winning postal code. Zero when the extreme is empty.
func (e Extreme) Code() uint32 { return e.code }

// Value returns the winning coordinate. Zero when the extreme is empty.
func (e Extreme) Value() float64 { return e.value }

// SeededExtreme builds an extreme holding the given winner.
func SeededExtreme(code uint32, value float64) Extreme {
	return Extreme{set: true, code: code, value: value}
}

// RegionExtremes holds the four extreme records of a single region.
type RegionExtremes struct {
	Easternmost  Extreme // min longitude
	Westernmost  Extreme // max longitude
	Northernmost Extreme // max latitude
	Southernmost Extreme // min latitude
}
