package layout

import (
	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/vector"
)

// Column lays out vertical columns left to right, each rect.H*v[i] tall and
// standing on the bottom edge. Labels sit centered above the column top,
// ColumnLabelOffset clear of it.
func Column(v vector.Vector, rect models.Rect, style Style, format Formatter) models.Frame {
	n := len(v)
	frame := newFrame(models.KindColumn, rect, n)
	if n == 0 {
		return frame
	}
	format = orDefault(format)

	columnWidth := bandSize(rect.W, n, style.GapSize)
	xpos := style.GapSize

	for i, value := range v {
		height := rect.H * value
		col := models.Rect{
			X: rect.X + xpos,
			Y: rect.Y + rect.H - height,
			W: columnWidth,
			H: height,
		}
		frame.Primitives = append(frame.Primitives, models.RectPrimitive(i, col))
		frame.Labels = append(frame.Labels, models.Anchor{
			Index: i,
			Text:  format(value, i),
			X:     col.X,
			Y:     col.Y - style.ColumnLabelOffset - style.ColumnLabelHeight,
			W:     columnWidth,
			H:     style.ColumnLabelHeight,
			Align: models.AlignCenter,
		})
		xpos += columnWidth + style.GapSize
	}

	return frame
}
