package source

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// resolveSheet returns sheet, or the first sheet of f when sheet is empty.
func resolveSheet(f *excelize.File, sheet string) (string, error) {
	if sheet != "" {
		if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
			return "", fmt.Errorf("sheet not found: %s", sheet)
		}
		return sheet, nil
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	return sheets[0], nil
}

// LoadColumn reads one column of a worksheet as samples. column is a column
// letter or a header name; empty picks the first numeric column. A text
// header above the numbers becomes the dataset name.
func LoadColumn(f *excelize.File, sheet, column string) (models.Dataset, error) {
	sheet, err := resolveSheet(f, sheet)
	if err != nil {
		return models.Dataset{}, err
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Dataset{}, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	col, err := selectColumn(rows, column, columnLetter)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("sheet %s: %w", sheet, err)
	}

	name, samples, err := extractColumn(rows, col)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("sheet %s: %w", sheet, err)
	}
	if name == "" {
		letter, _ := excelize.ColumnNumberToName(col + 1)
		name = sheet + "!" + letter
	}

	return models.Dataset{Name: name, Samples: samples}, nil
}

// columnLetter resolves an all-letter selector such as "B" or "AA".
func columnLetter(selector string) (int, bool) {
	for _, r := range selector {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return 0, false
		}
	}
	if len(selector) > 3 {
		return 0, false
	}

	n, err := excelize.ColumnNameToNumber(strings.ToUpper(selector))
	if err != nil {
		return 0, false
	}
	return n - 1, true
}

// LoadCells reads a rectangular cell range such as "B2:B7", row by row.
// ref may carry a sheet prefix ("'Data'!$B$2:$B$7"), which overrides sheet.
// Empty cells are skipped and any other non-numeric cell is an error.
func LoadCells(f *excelize.File, sheet, ref string) (models.Dataset, error) {
	refSheet, cells := SplitReference(ref)
	if refSheet != "" {
		sheet = refSheet
	}
	ref = cells

	sheet, err := resolveSheet(f, sheet)
	if err != nil {
		return models.Dataset{}, err
	}

	area, err := parseArea(ref)
	if err != nil {
		return models.Dataset{}, err
	}

	samples := make([]float64, 0, area.cells())
	for row := area.top; row <= area.bottom; row++ {
		for col := area.left; col <= area.right; col++ {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			value, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
			if err != nil {
				return models.Dataset{}, fmt.Errorf("failed to read %s!%s: %w", sheet, cell, err)
			}
			if strings.TrimSpace(value) == "" {
				continue
			}
			v, ok := parseNumber(value)
			if !ok {
				return models.Dataset{}, fmt.Errorf("%w: %s!%s %q", ErrNotNumeric, sheet, cell, value)
			}
			samples = append(samples, v)
		}
	}

	if len(samples) == 0 {
		return models.Dataset{}, fmt.Errorf("%s!%s: %w", sheet, ref, ErrNoNumericData)
	}
	return models.Dataset{Name: sheet + "!" + ref, Samples: samples}, nil
}
