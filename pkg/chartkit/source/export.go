package source

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/normalize"
)

// excelChartTypes maps chart kinds to native Excel chart types.
var excelChartTypes = map[models.Kind]excelize.ChartType{
	models.KindBar:    excelize.Bar,
	models.KindColumn: excelize.Col,
	models.KindLine:   excelize.Line,
	models.KindPie:    excelize.Pie,
}

// ExportOptions configures WriteWorkbook.
type ExportOptions struct {
	// Sheet names the data sheet. Defaults to "Data".
	Sheet string
	// Title is the chart title. Defaults to the dataset name.
	Title string
	// Categories label the samples. Defaults to 1..n.
	Categories []string
	// Range fixes the value axis. Ignored for pie charts.
	Range *normalize.Range
}

// WriteWorkbook writes ds to a new workbook at path: categories in column A,
// samples in column B, and a native chart of the given kind beside them.
func WriteWorkbook(path string, ds models.Dataset, kind models.Kind, opts ExportOptions) error {
	chartType, ok := excelChartTypes[kind]
	if !ok {
		return fmt.Errorf("no Excel chart type for kind %q", kind)
	}
	if opts.Categories != nil && len(opts.Categories) != ds.Len() {
		return fmt.Errorf("got %d categories for %d samples", len(opts.Categories), ds.Len())
	}

	sheet := opts.Sheet
	if sheet == "" {
		sheet = "Data"
	}
	name := ds.Name
	if name == "" {
		name = "Values"
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	// Write data
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"Category", name}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, v := range ds.Samples {
		category := strconv.Itoa(i + 1)
		if opts.Categories != nil {
			category = opts.Categories[i]
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{category, v}); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	// Add chart
	title := opts.Title
	if title == "" {
		title = name
	}
	chart := &excelize.Chart{
		Type: chartType,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$B$1", sheet),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, ds.Len()+1),
			Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", sheet, ds.Len()+1),
		}},
		Title:     []excelize.RichTextRun{{Text: title}},
		Dimension: excelize.ChartDimension{Width: 480, Height: 320},
	}
	if opts.Range != nil && !kind.Angular() {
		if err := opts.Range.Validate(); err != nil {
			return err
		}
		lo, hi := opts.Range.Min, opts.Range.Max
		chart.YAxis = excelize.ChartAxis{Minimum: &lo, Maximum: &hi, MajorGridLines: true}
	}
	if err := f.AddChart(sheet, "D2", chart); err != nil {
		return fmt.Errorf("failed to add chart: %w", err)
	}

	// Write output
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
