// Package source loads chart samples from spreadsheets, JSON and CSV files,
// discovers value-axis ranges from native Excel charts, and writes samples
// back out as a workbook with a chart.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned for input files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported input format")
	// ErrNoNumericData is returned when no numeric column can be found.
	ErrNoNumericData = errors.New("no numeric data")
	// ErrNotNumeric is returned when a selected cell does not hold a number.
	ErrNotNumeric = errors.New("value is not numeric")
	// ErrColumnNotFound is returned when a requested column does not exist.
	ErrColumnNotFound = errors.New("column not found")
	// ErrNoAxisRange is returned when no chart in a workbook fixes its value axis.
	ErrNoAxisRange = errors.New("no chart with a fixed value axis")
)

// Format is an input file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// DetectFormat returns the format implied by a file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".json":
		return FormatJSON, nil
	case ".csv", ".tsv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ParseValues parses a comma separated list of numbers such as "1, 2.5,-3".
// Blank input yields an empty slice.
func ParseValues(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []float64{}, nil
	}

	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for i, part := range parts {
		v, ok := parseNumber(part)
		if !ok {
			return nil, fmt.Errorf("%w: item %d %q", ErrNotNumeric, i+1, strings.TrimSpace(part))
		}
		values = append(values, v)
	}
	return values, nil
}

// parseNumber parses a cell or list item as a float. Thousands separators
// and a trailing percent sign are accepted.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	percent := strings.HasSuffix(s, "%")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if percent {
		v /= 100
	}
	return v, true
}

// baseName returns the file name without its extension.
func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func checkFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("input file not found: %s", path)
	}
	return nil
}
