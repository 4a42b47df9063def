package chartkit

import (
	"github.com/ukaji3/chartkit-go/pkg/chartkit/layout"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/normalize"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/transition"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/vector"
)

// DefaultGridCells is the number of graph paper cells per side.
const DefaultGridCells = 10

// Options configures chart construction.
type Options struct {
	// Kind specifies the chart type (bar, column, line, pie).
	Kind models.Kind
	// Range fixes the value range. If nil, it is derived from the samples
	// (or from their sum for pie charts).
	Range *normalize.Range
	// Width and Height size the drawing rectangle.
	Width  float64
	Height float64
	// Style holds the spacing and label constants.
	Style layout.Style
	// Formatter renders label text. If nil, fractions are printed with two
	// decimals.
	Formatter layout.Formatter
	// ShowAxis specifies whether to add the X-Y axis decoration.
	// If nil, defaults to true for every kind except pie.
	ShowAxis *bool
	// ShowGrid adds graph paper behind the chart.
	ShowGrid bool
	// GridCells is the graph paper resolution.
	GridCells int
	// Padding selects how vectors of different lengths are aligned during
	// transitions. If nil, pie charts repeat their last angle and other
	// kinds pad with zeros.
	Padding *vector.Padding
	// Easing shapes transition progress. If nil, ease-in-out is used.
	Easing transition.Easing
}

// DefaultOptions returns default chart options.
func DefaultOptions() Options {
	return Options{
		Kind:      models.KindBar,
		Width:     400,
		Height:    300,
		Style:     layout.DefaultStyle(),
		GridCells: DefaultGridCells,
	}
}

// Rect returns the drawing rectangle.
func (o Options) Rect() models.Rect {
	return models.NewRect(o.Width, o.Height)
}

// ShouldShowAxis returns whether to add the axis decoration.
func (o Options) ShouldShowAxis() bool {
	if o.Kind.Angular() {
		return false
	}
	if o.ShowAxis != nil {
		return *o.ShowAxis
	}
	return true
}

// PaddingFor returns the padding policy for transitions.
func (o Options) PaddingFor() vector.Padding {
	if o.Padding != nil {
		return *o.Padding
	}
	if o.Kind.Angular() {
		return vector.PadLast
	}
	return vector.PadZero
}

// EasingFor returns the transition easing.
func (o Options) EasingFor() transition.Easing {
	if o.Easing != nil {
		return o.Easing
	}
	return transition.EaseInOut
}
