package layout

import "github.com/ukaji3/chartkit-go/pkg/chartkit/models"

// Axis returns the X-Y axis pair with the origin in the lower-left corner,
// inset one unit from the top and left edges.
func Axis(rect models.Rect) models.Primitive {
	axis := models.PolylinePrimitive(models.NoIndex, []models.Point{
		{X: rect.X + 1, Y: rect.Y + 1},
		{X: rect.X + 1, Y: rect.MaxY()},
		{X: rect.MaxX(), Y: rect.MaxY()},
	})
	axis.Role = models.RoleAxis
	return axis
}

// GraphPaper returns cells+1 horizontal and cells+1 vertical grid lines
// dividing rect into cells×cells cells. Horizontal lines run bottom to top.
func GraphPaper(rect models.Rect, cells int) []models.Primitive {
	if cells <= 0 {
		return nil
	}

	lines := make([]models.Primitive, 0, 2*(cells+1))
	yspacing := rect.H / float64(cells)
	xspacing := rect.W / float64(cells)

	// horizontal lines
	for i := 0; i <= cells; i++ {
		y := rect.MaxY() - float64(i)*yspacing
		lines = append(lines, models.PolylinePrimitive(models.NoIndex, []models.Point{
			{X: rect.X, Y: y},
			{X: rect.MaxX(), Y: y},
		}))
	}

	// vertical lines
	for i := 0; i <= cells; i++ {
		x := rect.X + float64(i)*xspacing
		lines = append(lines, models.PolylinePrimitive(models.NoIndex, []models.Point{
			{X: x, Y: rect.Y},
			{X: x, Y: rect.MaxY()},
		}))
	}

	for i := range lines {
		lines[i].Role = models.RoleGrid
	}
	return lines
}
