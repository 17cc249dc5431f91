// Package graphio - aligned per-vertex value files.
//
// One float64 per line, row i = vertex i. Used for the target vector and
// the scaled-feature vector between the build and train stages.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadValue indicates an unparsable line in a value file.
var ErrBadValue = errors.New("graphio: malformed value line")

// WriteValues writes one value per line to w.
// Complexity: O(n).
func WriteValues(w io.Writer, vals []float64) error {
	bw := bufio.NewWriter(w)
	for _, v := range vals {
		if _, err := bw.WriteString(formatFloat(v) + "\n"); err != nil {
			return fmt.Errorf("graphio: write values: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: write values: %w", err)
	}

	return nil
}

// ReadValues reads one value per line from r; blank lines are skipped.
// Complexity: O(n).
func ReadValues(r io.Reader) ([]float64, error) {
	var (
		vals []float64
		sc   = bufio.NewScanner(r)
		line int
	)
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("graphio: line %d: %w", line, ErrBadValue)
		}
		vals = append(vals, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read values: %w", err)
	}

	return vals, nil
}
