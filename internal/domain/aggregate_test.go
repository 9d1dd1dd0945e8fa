package domain_test

import (
	"math/rand/v2"
	"testing"

	"github.com/couchcryptid/zip-extremes/internal/domain"
	"github.com/couchcryptid/zip-extremes/internal/fixture"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// extremeCodes flattens an accumulator to the four winning codes.
type extremeCodes struct {
	East, West, North, South uint32
}

func codesOf(x domain.RegionExtremes) extremeCodes {
	return extremeCodes{
		East:  x.Easternmost.Code(),
		West:  x.Westernmost.Code(),
		North: x.Northernmost.Code(),
		South: x.Southernmost.Code(),
	}
}

func TestAggregate_TwoRegions(t *testing.T) {
	records := []domain.Record{
		{Code: 10001, Place: "New York", Region: "NY", Subregion: "New York", Latitude: 40.71, Longitude: -74.01},
		{Code: 10002, Place: "New York", Region: "NY", Subregion: "New York", Latitude: 40.72, Longitude: -74.00},
		{Code: 90001, Place: "Los Angeles", Region: "CA", Subregion: "Los Angeles", Latitude: 34.05, Longitude: -118.25},
	}

	got := domain.Aggregate(records)
	require.Len(t, got, 2)

	assert.Equal(t, extremeCodes{East: 10001, West: 10002, North: 10002, South: 10001}, codesOf(got["NY"]))
	assert.Equal(t, extremeCodes{East: 90001, West: 90001, North: 90001, South: 90001}, codesOf(got["CA"]))

	assert.Equal(t, -74.01, got["NY"].Easternmost.Value())
	assert.Equal(t, -74.00, got["NY"].Westernmost.Value())
	assert.Equal(t, 40.72, got["NY"].Northernmost.Value())
	assert.Equal(t, 40.71, got["NY"].Southernmost.Value())
}

func TestAggregate_TieBreakSmallerCodeWins(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.Record
	}{
		{
			name: "larger code first",
			records: []domain.Record{
				{Code: 10023, Region: "NY", Latitude: 40.1, Longitude: -74.0},
				{Code: 10005, Region: "NY", Latitude: 40.2, Longitude: -74.0},
			},
		},
		{
			name: "smaller code first",
			records: []domain.Record{
				{Code: 10005, Region: "NY", Latitude: 40.2, Longitude: -74.0},
				{Code: 10023, Region: "NY", Latitude: 40.1, Longitude: -74.0},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Aggregate(tt.records)["NY"]
			assert.Equal(t, uint32(10005), got.Easternmost.Code())
			assert.Equal(t, uint32(10005), got.Westernmost.Code())
			assert.Equal(t, uint32(10005), got.Northernmost.Code())
			assert.Equal(t, uint32(10023), got.Southernmost.Code())
		})
	}
}

func TestAggregate_StrictlyBetterReplacesSmallerCode(t *testing.T) {
	got := domain.Aggregate([]domain.Record{
		{Code: 100, Region: "TX", Latitude: 30, Longitude: -97},
		{Code: 99999, Region: "TX", Latitude: 31, Longitude: -98},
	})["TX"]

	assert.Equal(t, uint32(99999), got.Easternmost.Code())
	assert.Equal(t, uint32(100), got.Westernmost.Code())
	assert.Equal(t, uint32(99999), got.Northernmost.Code())
	assert.Equal(t, uint32(100), got.Southernmost.Code())
}

func TestAggregate_CodeZeroIsARealCode(t *testing.T) {
	got := domain.Aggregate([]domain.Record{
		{Code: 0, Region: "PR", Latitude: 18.2, Longitude: -66.5},
		{Code: 601, Region: "PR", Latitude: 18.2, Longitude: -66.5},
	})["PR"]

	require.True(t, got.Easternmost.Seeded())
	assert.Equal(t, uint32(0), got.Easternmost.Code())
	assert.Equal(t, uint32(0), got.Northernmost.Code())
}

func TestAggregate_RegionKeyIsCaseSensitive(t *testing.T) {
	got := domain.Aggregate([]domain.Record{
		{Code: 1, Region: "ny", Latitude: 1, Longitude: 1},
		{Code: 2, Region: "NY", Latitude: 2, Longitude: 2},
	})
	assert.Len(t, got, 2)
	assert.Equal(t, []string{"NY", "ny"}, domain.SortedRegions(got))
}

func TestAggregate_Empty(t *testing.T) {
	got := domain.Aggregate(nil)
	assert.Empty(t, got)
	assert.Empty(t, domain.SortedRegions(got))
}

func TestAggregate_OrderIndependent(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		records := fixture.Records(fixture.Options{Rows: 200, Seed: seed})
		want := domain.Aggregate(records)

		rng := rand.New(rand.NewPCG(seed, 42))
		for range 10 {
			shuffled := append([]domain.Record(nil), records...)
			rng.Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			got := domain.Aggregate(shuffled)
			if diff := cmp.Diff(want, got, cmp.AllowUnexported(domain.Extreme{})); diff != "" {
				t.Fatalf("seed %d: permutation changed result (-want +got):\n%s", seed, diff)
			}
		}
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	records := fixture.Records(fixture.Options{Rows: 100, Seed: 99})
	doubled := append(append([]domain.Record(nil), records...), records...)

	want := domain.Aggregate(records)
	got := domain.Aggregate(doubled)
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(domain.Extreme{})); diff != "" {
		t.Fatalf("duplicated input changed result (-want +got):\n%s", diff)
	}
}

func TestSortedRegions(t *testing.T) {
	m := map[string]domain.RegionExtremes{"WY": {}, "AK": {}, "CA": {}}
	assert.Equal(t, []string{"AK", "CA", "WY"}, domain.SortedRegions(m))
}

func TestExtreme_ZeroValueIsEmpty(t *testing.T) {
	var e domain.Extreme
	assert.False(t, e.Seeded())

	s := domain.SeededExtreme(501, -66.1)
	assert.True(t, s.Seeded())
	assert.Equal(t, uint32(501), s.Code())
	assert.Equal(t, -66.1, s.Value())
}
