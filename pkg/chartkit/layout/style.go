// Package layout turns fractional and angular vectors into the rectangles,
// polylines, wedges and label anchors that make up a chart.
//
// Every function here is pure: it reads its arguments, allocates a new
// models.Frame and never retains references, so layouts may run
// concurrently on shared vectors.
package layout

import (
	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/vector"
)

// Style holds the spacing constants shared by the layouts.
type Style struct {
	// GapSize is the space between bars or columns and around the outer ones.
	GapSize float64 `json:"gap_size" mapstructure:"gap_size"`

	// BarLabelWidth is the width of a bar label box.
	BarLabelWidth float64 `json:"bar_label_width" mapstructure:"bar_label_width"`
	// BarLabelOffset is how far left of the bar end the label box starts.
	BarLabelOffset float64 `json:"bar_label_offset" mapstructure:"bar_label_offset"`

	// ColumnLabelHeight is the height of a column label box.
	ColumnLabelHeight float64 `json:"column_label_height" mapstructure:"column_label_height"`
	// ColumnLabelOffset is the gap between a column top and its label box.
	ColumnLabelOffset float64 `json:"column_label_offset" mapstructure:"column_label_offset"`

	// LineLabelGutter is headroom kept above a full-scale line point.
	LineLabelGutter float64 `json:"line_label_gutter" mapstructure:"line_label_gutter"`
	// LineLabelMargin lifts a line label above its point.
	LineLabelMargin float64 `json:"line_label_margin" mapstructure:"line_label_margin"`
	LineLabelWidth  float64 `json:"line_label_width" mapstructure:"line_label_width"`
	LineLabelHeight float64 `json:"line_label_height" mapstructure:"line_label_height"`

	// PieLabelRadius places pie labels at this fraction of the radius.
	PieLabelRadius float64 `json:"pie_label_radius" mapstructure:"pie_label_radius"`
	PieLabelWidth  float64 `json:"pie_label_width" mapstructure:"pie_label_width"`
	PieLabelHeight float64 `json:"pie_label_height" mapstructure:"pie_label_height"`
}

// DefaultStyle returns the standard spacing constants.
func DefaultStyle() Style {
	return Style{
		GapSize:           2,
		BarLabelWidth:     200,
		BarLabelOffset:    204,
		ColumnLabelHeight: 30,
		ColumnLabelOffset: 2,
		LineLabelGutter:   10,
		LineLabelMargin:   10,
		LineLabelWidth:    60,
		LineLabelHeight:   16,
		PieLabelRadius:    0.75,
		PieLabelWidth:     40,
		PieLabelHeight:    20,
	}
}

// Func is the common signature of the four chart layouts.
type Func func(v vector.Vector, rect models.Rect, style Style, format Formatter) models.Frame

// For returns the layout for a chart kind.
func For(kind models.Kind) (Func, bool) {
	switch kind {
	case models.KindBar:
		return Bar, true
	case models.KindColumn:
		return Column, true
	case models.KindLine:
		return Line, true
	case models.KindPie:
		return Pie, true
	default:
		return nil, false
	}
}

// newFrame allocates a frame with non-nil slices sized for n data points.
func newFrame(kind models.Kind, rect models.Rect, n int) models.Frame {
	if n < 0 {
		n = 0
	}
	return models.Frame{
		Kind:       kind,
		Bounds:     rect,
		Primitives: make([]models.Primitive, 0, n),
		Labels:     make([]models.Anchor, 0, n),
	}
}

// bandSize splits total into n equal bands separated by n+1 gaps.
func bandSize(total float64, n int, gap float64) float64 {
	return (total - gap*float64(n+1)) / float64(n)
}
