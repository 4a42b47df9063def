package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// LoadOptions selects which samples to read from an input file.
type LoadOptions struct {
	// Sheet is the worksheet to read (xlsx only). Empty means the first sheet.
	Sheet string
	// Column is a column letter ("B"), a 1-based index (csv) or a header
	// name. Empty means the first column holding numbers.
	Column string
	// Cells is an explicit cell range such as "B2:B7" (xlsx only). It takes
	// precedence over Column.
	Cells string
}

// Load reads a dataset from path, choosing the reader by file extension.
func Load(path string, opts LoadOptions) (models.Dataset, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return models.Dataset{}, err
	}
	if err := checkFile(path); err != nil {
		return models.Dataset{}, err
	}

	switch format {
	case FormatJSON:
		return LoadJSON(path)
	case FormatCSV:
		return LoadCSV(path, opts.Column)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	var ds models.Dataset
	if opts.Cells != "" {
		ds, err = LoadCells(f, opts.Sheet, opts.Cells)
	} else {
		ds, err = LoadColumn(f, opts.Sheet, opts.Column)
	}
	if err != nil {
		return models.Dataset{}, err
	}
	ds.Source = path
	return ds, nil
}
