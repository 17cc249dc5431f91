// Package dataset - record types and sentinel errors.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed; match with errors.Is.
//   - Implementations attach row context via %w wrapping at the boundary.
//   - No panics on malformed input.
package dataset

import "errors"

// MonthsPerYear is the number of monthly precipitation fields per record.
const MonthsPerYear = 12

// Sentinel errors for dataset ingestion.
var (
	// ErrNoRecords indicates the input contained a header but no data rows.
	ErrNoRecords = errors.New("dataset: no records")

	// ErrMissingField indicates a row is short or a required cell is empty.
	ErrMissingField = errors.New("dataset: missing field")

	// ErrBadRecord indicates a numeric cell failed to parse.
	ErrBadRecord = errors.New("dataset: malformed record")
)

// Location is one weather station: identity, geocoordinates, altitude and
// twelve monthly precipitation totals. Immutable once loaded.
type Location struct {
	// Name uniquely identifies the station within the dataset.
	Name string

	// Lat and Long are geographic coordinates in decimal degrees.
	Lat  float64
	Long float64

	// Alt is the station altitude in meters.
	Alt float64

	// Precip holds the twelve monthly precipitation values (Jan..Dec).
	Precip [MonthsPerYear]float64
}

// AnnualTotal returns the sum of the twelve monthly precipitation values.
// This is the regression target for the vertex associated with l.
// Complexity: O(1).
func (l Location) AnnualTotal() float64 {
	var total float64
	for _, m := range l.Precip {
		total += m
	}

	return total
}
