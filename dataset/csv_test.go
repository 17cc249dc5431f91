package dataset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/precipgnn/dataset"
)

const header = "name,lat,long,alt,jan,feb,mar,apr,may,jun,jul,aug,sep,oct,nov,dec\n"

// TestLoad_TwoRecords parses a well-formed table and verifies field mapping
// and row-order preservation.
func TestLoad_TwoRecords(t *testing.T) {
	in := header +
		"Eureka,40.8,-124.16,13,168,142,135,65,43,17,2,6,15,58,126,158\n" +
		"Bishop,37.36,-118.4,1263,32,30,16,8,5,3,4,2,6,10,16,25\n"

	locs, err := dataset.Load(strings.NewReader(in))
	require.NoError(t, err, "well-formed input must load")
	require.Len(t, locs, 2, "two data rows expected")

	assert.Equal(t, "Eureka", locs[0].Name, "row order must be preserved")
	assert.Equal(t, 40.8, locs[0].Lat, "lat field")
	assert.Equal(t, -124.16, locs[0].Long, "long field")
	assert.Equal(t, 13.0, locs[0].Alt, "alt field")
	assert.Equal(t, 168.0, locs[0].Precip[0], "january value")
	assert.Equal(t, 158.0, locs[0].Precip[11], "december value")
}

// TestLoad_HeaderOnly verifies that a header with no data rows yields
// ErrNoRecords.
func TestLoad_HeaderOnly(t *testing.T) {
	_, err := dataset.Load(strings.NewReader(header))
	assert.ErrorIs(t, err, dataset.ErrNoRecords, "header-only input must error")
}

// TestLoad_ShortRow verifies that a row missing monthly fields yields
// ErrMissingField.
func TestLoad_ShortRow(t *testing.T) {
	in := header + "Eureka,40.8,-124.16,13,168,142\n"

	_, err := dataset.Load(strings.NewReader(in))
	assert.ErrorIs(t, err, dataset.ErrMissingField, "short row must error")
}

// TestLoad_EmptyCell verifies that an empty monthly cell yields
// ErrMissingField rather than parsing as zero.
func TestLoad_EmptyCell(t *testing.T) {
	in := header + "Eureka,40.8,-124.16,13,168,142,135,,43,17,2,6,15,58,126,158\n"

	_, err := dataset.Load(strings.NewReader(in))
	assert.ErrorIs(t, err, dataset.ErrMissingField, "empty cell must error")
}

// TestLoad_BadNumber verifies that a non-numeric cell yields ErrBadRecord.
func TestLoad_BadNumber(t *testing.T) {
	in := header + "Eureka,40.8,-124.16,high,168,142,135,65,43,17,2,6,15,58,126,158\n"

	_, err := dataset.Load(strings.NewReader(in))
	assert.ErrorIs(t, err, dataset.ErrBadRecord, "non-numeric altitude must error")
}

// TestLoad_EmptyName verifies that a blank station name is rejected.
func TestLoad_EmptyName(t *testing.T) {
	in := header + " ,40.8,-124.16,13,168,142,135,65,43,17,2,6,15,58,126,158\n"

	_, err := dataset.Load(strings.NewReader(in))
	assert.ErrorIs(t, err, dataset.ErrMissingField, "blank name must error")
}

// TestAnnualTotal verifies the regression target is the sum of the twelve
// monthly values.
func TestAnnualTotal(t *testing.T) {
	loc := dataset.Location{Precip: [12]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}}
	assert.Equal(t, 78.0, loc.AnnualTotal(), "sum of 1..12")
}
