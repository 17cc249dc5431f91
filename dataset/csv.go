// Package dataset - CSV ingestion.
//
// Expected layout (header + one row per station):
//
//	name,lat,long,alt,jan,feb,mar,apr,may,jun,jul,aug,sep,oct,nov,dec
//
// The header row is required and skipped verbatim; column names are not
// interpreted. All numeric cells must parse as float64.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// fieldsPerRecord = name + lat + long + alt + 12 monthly values.
const fieldsPerRecord = 4 + MonthsPerYear

// Load reads location records from r in CSV form.
// Stage 1 (Parse): read all rows via encoding/csv with a fixed field count.
// Stage 2 (Validate): reject empty cells and non-numeric values per row.
// Stage 3 (Finalize): return the ordered record slice or a sentinel error.
// Complexity: O(rows).
func Load(r io.Reader) ([]Location, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row width validated below for better context

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}
	// Drop the mandatory header row.
	if len(rows) > 0 {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, ErrNoRecords
	}

	locs := make([]Location, 0, len(rows))
	var row []string
	for i, raw := range rows {
		row = raw
		if len(row) != fieldsPerRecord {
			return nil, fmt.Errorf("dataset: row %d has %d fields, want %d: %w",
				i+1, len(row), fieldsPerRecord, ErrMissingField)
		}

		loc, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("dataset: row %d: %w", i+1, err)
		}
		locs = append(locs, loc)
	}

	return locs, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) ([]Location, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// parseRow converts one validated-width CSV row into a Location.
// Empty cells map to ErrMissingField, unparsable cells to ErrBadRecord.
func parseRow(row []string) (Location, error) {
	var loc Location

	loc.Name = strings.TrimSpace(row[0])
	if loc.Name == "" {
		return Location{}, fmt.Errorf("name: %w", ErrMissingField)
	}

	var err error
	if loc.Lat, err = parseCell(row[1], "lat"); err != nil {
		return Location{}, err
	}
	if loc.Long, err = parseCell(row[2], "long"); err != nil {
		return Location{}, err
	}
	if loc.Alt, err = parseCell(row[3], "alt"); err != nil {
		return Location{}, err
	}
	for m := 0; m < MonthsPerYear; m++ {
		if loc.Precip[m], err = parseCell(row[4+m], fmt.Sprintf("month %d", m+1)); err != nil {
			return Location{}, err
		}
	}

	return loc, nil
}

// parseCell parses one numeric cell, mapping failures to sentinels.
func parseCell(cell, field string) (float64, error) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, fmt.Errorf("%s: %w", field, ErrMissingField)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, ErrBadRecord)
	}

	return v, nil
}
