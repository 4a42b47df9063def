package layout

import (
	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/vector"
)

// Line lays out one polyline through n evenly spaced points. Points are
// rect.W/(n+1) apart so neither end touches the chart edge, and
// LineLabelGutter is kept free above a point at full scale.
//
// The frame holds a single polyline primitive and one label per point, so
// for line charts len(Labels) equals len(Primitives[0].Points) rather than
// len(Primitives).
func Line(v vector.Vector, rect models.Rect, style Style, format Formatter) models.Frame {
	n := len(v)
	frame := newFrame(models.KindLine, rect, n)
	if n == 0 {
		return frame
	}
	format = orDefault(format)

	spacing := rect.W / float64(n+1)
	usable := rect.H - style.LineLabelGutter
	points := make([]models.Point, n)

	for i, value := range v {
		pt := models.Point{
			X: rect.X + spacing*float64(i+1),
			Y: rect.Y + rect.H - usable*value,
		}
		points[i] = pt

		lifted := models.Point{X: pt.X, Y: pt.Y - style.LineLabelMargin - style.LineLabelHeight/2}
		frame.Labels = append(frame.Labels,
			centeredBox(i, format(value, i), lifted, style.LineLabelWidth, style.LineLabelHeight))
	}

	frame.Primitives = append(frame.Primitives, models.PolylinePrimitive(models.NoIndex, points))
	return frame
}
