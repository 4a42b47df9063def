package source

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// LoadCSV reads one column of a CSV (or .tsv) file as samples. column is a
// 1-based column number or a header name; empty picks the first numeric
// column.
func LoadCSV(path, column string) (models.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		reader.Comma = '\t'
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return models.Dataset{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	col, err := selectColumn(rows, column, columnNumber)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("%s: %w", path, err)
	}

	name, samples, err := extractColumn(rows, col)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	if name == "" {
		name = baseName(path)
	}

	return models.Dataset{Name: name, Samples: samples, Source: path}, nil
}

// columnNumber resolves a 1-based column number.
func columnNumber(selector string) (int, bool) {
	n, err := strconv.Atoi(selector)
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}
