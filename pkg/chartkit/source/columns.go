package source

import (
	"fmt"
	"strings"
)

// columnResolver maps a format-specific column selector (a letter, an
// index) to a 0-based column index.
type columnResolver func(selector string) (int, bool)

// selectColumn picks the column to read from rows. An empty selector picks
// the first column that holds a number. Otherwise the selector is matched
// against the header row first and then tried with resolve.
func selectColumn(rows [][]string, selector string, resolve columnResolver) (int, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return firstNumericColumn(rows)
	}

	if len(rows) > 0 {
		for idx, header := range rows[0] {
			if strings.EqualFold(strings.TrimSpace(header), selector) {
				return idx, nil
			}
		}
	}

	if idx, ok := resolve(selector); ok {
		return idx, nil
	}
	return -1, fmt.Errorf("%w: %q", ErrColumnNotFound, selector)
}

// firstNumericColumn returns the leftmost column with at least one numeric cell.
func firstNumericColumn(rows [][]string) (int, error) {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	for col := 0; col < width; col++ {
		for _, row := range rows {
			if col < len(row) {
				if _, ok := parseNumber(row[col]); ok {
					return col, nil
				}
			}
		}
	}
	return -1, ErrNoNumericData
}

// extractColumn reads column col of rows. A non-numeric first cell is taken
// as the header and returned as the name. Empty cells are skipped.
func extractColumn(rows [][]string, col int) (string, []float64, error) {
	var name string
	start := 0
	if len(rows) > 0 && col < len(rows[0]) {
		if _, ok := parseNumber(rows[0][col]); !ok && strings.TrimSpace(rows[0][col]) != "" {
			name = strings.TrimSpace(rows[0][col])
			start = 1
		}
	}

	samples := make([]float64, 0, len(rows))
	for rowIdx := start; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if col >= len(row) || strings.TrimSpace(row[col]) == "" {
			continue
		}
		v, ok := parseNumber(row[col])
		if !ok {
			return name, nil, fmt.Errorf("%w: row %d %q", ErrNotNumeric, rowIdx+1, row[col])
		}
		samples = append(samples, v)
	}

	if len(samples) == 0 {
		return name, nil, ErrNoNumericData
	}
	return name, samples, nil
}
