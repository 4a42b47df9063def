package layout

import (
	"math"
	"strconv"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// Formatter renders the label text for one data point. value is the
// component the layout consumed (a fraction, or a wedge's share of the
// circle for pies) and index is its position in the vector.
type Formatter func(value float64, index int) string

// DefaultFormatter prints value with two decimals.
func DefaultFormatter(value float64, _ int) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

func orDefault(f Formatter) Formatter {
	if f == nil {
		return DefaultFormatter
	}
	return f
}

// centeredBox returns a label anchor of size w×h centered on p.
func centeredBox(index int, text string, p models.Point, w, h float64) models.Anchor {
	return models.Anchor{
		Index: index,
		Text:  text,
		X:     p.X - w/2,
		Y:     p.Y - h/2,
		W:     w,
		H:     h,
		Align: models.AlignCenter,
	}
}

// pointOnCircle returns the point at angle degrees on a circle, in screen
// coordinates.
func pointOnCircle(center models.Point, radius, angle float64) models.Point {
	rad := angle * math.Pi / 180
	return models.Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}
