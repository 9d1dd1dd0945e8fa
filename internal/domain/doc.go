// Package domain models postal-code location records and the per-region
// geographic extremes derived from them.
//
// # Data Source
//
// Records come from a delimited text file with one header line followed by
// one row per postal code:
//
//	code,place,region,subregion,latitude,longitude
//	"10001","New York, NY","NY","New York",40.7128,-74.0060
//
// Codes are stored numerically. Leading zeros ("00501") are a display concern
// and are restored by the report layer, which renders codes five digits wide.
//
// # Extremes
//
// Each region tracks four extremes:
//
//	Easternmost:  minimum longitude
//	Westernmost:  maximum longitude
//	Northernmost: maximum latitude
//	Southernmost: minimum latitude
//
// The naming follows the source data convention, where longitudes in the
// western hemisphere are negative and "easternmost" is the smallest value.
//
// # Tie-break
//
// When two records share the exact extreme coordinate the smaller code wins.
// Together with strict comparison for non-ties this makes [Aggregate] a
// commutative fold: any permutation of the input yields the same result.
package domain
