package layout

import (
	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/vector"
)

// Bar lays out horizontal bars stacked top to bottom. Bar i is
// rect.W*v[i] wide and the bars share rect.H evenly after n+1 gaps.
//
// Each label box is BarLabelWidth wide, spans its bar's height and starts
// BarLabelOffset left of the bar's end, with trailing text so that long
// labels stay inside the chart.
func Bar(v vector.Vector, rect models.Rect, style Style, format Formatter) models.Frame {
	n := len(v)
	frame := newFrame(models.KindBar, rect, n)
	if n == 0 {
		return frame
	}
	format = orDefault(format)

	barHeight := bandSize(rect.H, n, style.GapSize)
	ypos := style.GapSize

	for i, value := range v {
		bar := models.Rect{
			X: rect.X,
			Y: rect.Y + ypos,
			W: rect.W * value,
			H: barHeight,
		}
		frame.Primitives = append(frame.Primitives, models.RectPrimitive(i, bar))
		frame.Labels = append(frame.Labels, models.Anchor{
			Index: i,
			Text:  format(value, i),
			X:     bar.MaxX() - style.BarLabelOffset,
			Y:     bar.Y,
			W:     style.BarLabelWidth,
			H:     barHeight,
			Align: models.AlignTrailing,
		})
		ypos += barHeight + style.GapSize
	}

	return frame
}
