package layout

import (
	"math"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/normalize"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/vector"
)

// Pie lays out wedges from a sentinel-prefixed cumulative angle vector:
// wedge i spans v[i] to v[i+1] degrees around the rect center, with radius
// min(W,H)/2 and Clockwise false. A vector with n+1 angles yields n
// wedges. Sweeps that do not close the circle are drawn as they are.
//
// Labels sit on the bisecting angle at PieLabelRadius of the radius. The
// formatter receives each wedge's share of the full circle.
func Pie(v vector.Vector, rect models.Rect, style Style, format Formatter) models.Frame {
	n := len(v) - 1
	frame := newFrame(models.KindPie, rect, n)
	if n <= 0 {
		return frame
	}
	format = orDefault(format)

	center := rect.Center()
	radius := math.Max(math.Min(rect.W, rect.H)/2, 0)

	for i := 0; i < n; i++ {
		w := models.Wedge{
			Center:     center,
			Radius:     radius,
			StartAngle: v[i],
			EndAngle:   v[i+1],
		}
		frame.Primitives = append(frame.Primitives, models.WedgePrimitive(i, w))

		p := pointOnCircle(center, radius*style.PieLabelRadius, w.MidAngle())
		share := w.Sweep() / normalize.FullCircle
		frame.Labels = append(frame.Labels,
			centeredBox(i, format(share, i), p, style.PieLabelWidth, style.PieLabelHeight))
	}

	return frame
}
