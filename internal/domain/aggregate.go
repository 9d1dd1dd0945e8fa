package domain

import (
	"maps"
	"slices"
)

// Aggregate folds records into a mapping from region to its extremes in a
// single pass. The result does not depend on the order of records.
func Aggregate(records []Record) map[string]RegionExtremes {
	out := make(map[string]RegionExtremes)
	for i := range records {
		r := &records[i]
		ext := out[r.Region]
		ext.fold(r)
		out[r.Region] = ext
	}
	return out
}

// SortedRegions returns the region keys of m in lexicographic order.
func SortedRegions(m map[string]RegionExtremes) []string {
	return slices.Sorted(maps.Keys(m))
}

func (x *RegionExtremes) fold(r *Record) {
	x.Easternmost = x.Easternmost.offer(r.Code, r.Longitude, less)
	x.Westernmost = x.Westernmost.offer(r.Code, r.Longitude, greater)
	x.Northernmost = x.Northernmost.offer(r.Code, r.Latitude, greater)
	x.Southernmost = x.Southernmost.offer(r.Code, r.Latitude, less)
}

func less(a, b float64) bool    { return a < b }
func greater(a, b float64) bool { return a > b }

// offer returns the winner between e and the candidate. better reports whether
// its first argument strictly beats the second. On an exact coordinate tie the
// smaller code wins; an empty extreme always yields to the candidate.
func (e Extreme) offer(code uint32, value float64, better func(a, b float64) bool) Extreme {
	switch {
	case !e.set:
		return SeededExtreme(code, value)
	case better(value, e.value):
		return SeededExtreme(code, value)
	case value == e.value && code < e.code:
		return SeededExtreme(code, value)
	default:
		return e
	}
}
