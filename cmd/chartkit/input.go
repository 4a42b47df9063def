package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/chartkit-go/pkg/chartkit"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/normalize"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/source"
)

// inputFlags are the dataset and chart flags shared by the data commands.
type inputFlags struct {
	values string
	input  string
	sheet  string
	column string
	cells  string

	valueRange     string
	rangeFromChart bool

	kind        string
	width       float64
	height      float64
	grid        bool
	labelFormat string
}

// addInputFlags registers the dataset and chart flags on cmd.
func addInputFlags(cmd *cobra.Command, in *inputFlags) {
	f := cmd.Flags()
	f.StringVar(&in.values, "values", "", "comma separated samples, e.g. 3,1,4")
	f.StringVarP(&in.input, "input", "i", "", "input file (.xlsx, .json, .csv, .tsv)")
	f.StringVar(&in.sheet, "sheet", "", "worksheet to read (default: first sheet)")
	f.StringVar(&in.column, "column", "", "column letter, index or header (default: first numeric column)")
	f.StringVar(&in.cells, "cells", "", "cell range to read, e.g. B2:B9")
	f.StringVar(&in.valueRange, "range", "", "fixed value range min:max (default: derived from the data)")
	f.BoolVar(&in.rangeFromChart, "range-from-chart", false, "use the value-axis scaling of the first chart in the input workbook")
	f.StringVarP(&in.kind, "kind", "k", "", "chart kind: bar, column, line, pie (default from config)")
	f.Float64Var(&in.width, "width", 0, "chart width (default from config)")
	f.Float64Var(&in.height, "height", 0, "chart height (default from config)")
	f.BoolVar(&in.grid, "grid", false, "draw graph paper behind the chart")
	f.StringVar(&in.labelFormat, "label-format", "", "label the raw samples with a format such as %.1f (default: fractions)")
}

// dataset resolves the samples selected by the input flags.
//
// With --range-from-chart and no explicit --column or --cells, the samples
// are read from the first series of the chart that supplies the range.
func (a *app) dataset(in *inputFlags) (models.Dataset, error) {
	switch {
	case in.values != "" && in.input != "":
		return models.Dataset{}, errors.New("use either --values or --input, not both")
	case in.values != "":
		samples, err := source.ParseValues(in.values)
		if err != nil {
			return models.Dataset{}, fmt.Errorf("invalid --values: %w", err)
		}
		return models.Dataset{Name: "values", Samples: samples}, nil
	case in.input == "":
		return models.Dataset{}, errors.New("no input: use --values or --input")
	}

	// Validate input file exists
	if _, err := os.Stat(in.input); os.IsNotExist(err) {
		return models.Dataset{}, fmt.Errorf("file not found: %s", in.input)
	}

	if in.rangeFromChart && in.column == "" && in.cells == "" {
		ds, err := chartDataset(in.input)
		if err != nil {
			return models.Dataset{}, err
		}
		a.logger.Debug("samples read from chart", "name", ds.Name, "source", ds.Source, "count", ds.Len())
		return ds, nil
	}

	ds, err := source.Load(in.input, source.LoadOptions{
		Sheet:  in.sheet,
		Column: in.column,
		Cells:  in.cells,
	})
	if err != nil {
		return models.Dataset{}, fmt.Errorf("failed to load %s: %w", in.input, err)
	}
	a.logger.Debug("samples loaded", "name", ds.Name, "source", ds.Source, "count", ds.Len())
	return ds, nil
}

// chartDataset reads the first series of the first chart with a fixed
// value axis.
func chartDataset(path string) (models.Dataset, error) {
	_, info, err := source.RangeFromChart(path)
	if err != nil {
		return models.Dataset{}, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	ds, err := source.ChartSamples(f, *info)
	if err != nil {
		return models.Dataset{}, err
	}
	ds.Source = path + ":" + info.Part
	return ds, nil
}

// options merges the configured chart options with the command flags.
func (a *app) options(cmd *cobra.Command, in *inputFlags, ds models.Dataset) (chartkit.Options, error) {
	opts, err := a.cfg.ChartOptions()
	if err != nil {
		return chartkit.Options{}, err
	}

	// Chart flags
	if cmd.Flags().Changed("kind") {
		kind, ok := models.ParseKind(in.kind)
		if !ok {
			return chartkit.Options{}, fmt.Errorf("%w: %q", chartkit.ErrUnknownKind, in.kind)
		}
		opts.Kind = kind
	}
	if cmd.Flags().Changed("width") {
		opts.Width = in.width
	}
	if cmd.Flags().Changed("height") {
		opts.Height = in.height
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return chartkit.Options{}, fmt.Errorf("chart size must be positive, got %gx%g", opts.Width, opts.Height)
	}
	if cmd.Flags().Changed("grid") {
		opts.ShowGrid = in.grid
	}

	// Value range
	switch {
	case in.valueRange != "" && in.rangeFromChart:
		return chartkit.Options{}, errors.New("use either --range or --range-from-chart, not both")
	case in.valueRange != "":
		r, err := normalize.ParseRange(in.valueRange)
		if err != nil {
			return chartkit.Options{}, fmt.Errorf("invalid --range: %w", err)
		}
		opts.Range = &r
	case in.rangeFromChart:
		if in.input == "" {
			return chartkit.Options{}, errors.New("--range-from-chart requires an --input workbook")
		}
		r, info, err := source.RangeFromChart(in.input)
		if err != nil {
			return chartkit.Options{}, err
		}
		a.logger.Debug("value range read from chart", "part", info.Part, "range", r.String())
		opts.Range = &r
	}

	// Labels
	labelFormat := a.cfg.Chart.LabelFormat
	if cmd.Flags().Changed("label-format") {
		labelFormat = in.labelFormat
	}
	if labelFormat != "" {
		opts.Formatter = chartkit.DataFormatter(ds.Samples, labelFormat)
	}

	return opts, nil
}

// writeOutput writes data to path, or to the command output when path is
// empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
