package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// Table renders rows under a header with aligned columns.
type Table struct {
	table  *tablewriter.Table
	header []string
	rows   [][]string
}

// NewTable creates a borderless table writing to w.
func NewTable(w io.Writer, headers []string) *Table {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignRight,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignRight,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)

	return &Table{table: table, header: headers}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(row ...string) {
	t.rows = append(t.rows, row)
}

// Len returns the number of rows added.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the table.
func (t *Table) Render() error {
	t.table.Header(t.header)
	if err := t.table.Bulk(t.rows); err != nil {
		return fmt.Errorf("failed to add rows: %w", err)
	}
	if err := t.table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// SampleTable lists each sample with its normalized value. For angular
// vectors (one longer than samples) the wedge's start and end angles are
// shown instead of a single fraction.
func SampleTable(w io.Writer, samples []float64, normalized []float64) *Table {
	angular := len(normalized) == len(samples)+1
	headers := []string{"Index", "Sample", "Fraction"}
	if angular {
		headers = []string{"Index", "Sample", "Start", "End", "Sweep"}
	}

	t := NewTable(w, headers)
	for i, s := range samples {
		row := []string{strconv.Itoa(i), formatFloat(s)}
		switch {
		case angular:
			row = append(row,
				formatFloat(normalized[i]),
				formatFloat(normalized[i+1]),
				formatFloat(normalized[i+1]-normalized[i]))
		case i < len(normalized):
			row = append(row, formatFloat(normalized[i]))
		}
		t.AddRow(row...)
	}
	return t
}

// FrameTable lists the primitives of a frame with their label text.
func FrameTable(w io.Writer, frame models.Frame) *Table {
	t := NewTable(w, []string{"Index", "Kind", "X", "Y", "W/R", "H/Sweep", "Label"})

	labels := make(map[int]string, len(frame.Labels))
	for _, a := range frame.Labels {
		labels[a.Index] = a.Text
	}

	for _, p := range frame.Primitives {
		switch p.Kind {
		case models.PrimitiveRect:
			t.AddRow(strconv.Itoa(p.Index), string(p.Kind),
				formatFloat(p.Rect.X), formatFloat(p.Rect.Y),
				formatFloat(p.Rect.W), formatFloat(p.Rect.H),
				labels[p.Index])
		case models.PrimitiveWedge:
			t.AddRow(strconv.Itoa(p.Index), string(p.Kind),
				formatFloat(p.Wedge.Center.X), formatFloat(p.Wedge.Center.Y),
				formatFloat(p.Wedge.Radius), formatFloat(p.Wedge.Sweep()),
				labels[p.Index])
		case models.PrimitivePolyline:
			for i, pt := range p.Points {
				t.AddRow(strconv.Itoa(i), "point",
					formatFloat(pt.X), formatFloat(pt.Y), "", "",
					labels[i])
			}
		}
	}
	return t
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
