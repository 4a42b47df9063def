// Package render draws layout frames onto gonum/plot vector canvases and
// encodes them as SVG, PNG, JPEG, TIFF, PDF or EPS.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// DefaultMargin is the space kept around the frame bounds, in points.
const DefaultMargin = 40

// Theme holds the colors and strokes used to draw a frame.
type Theme struct {
	// Palette colors pie wedges by data index.
	Palette Palette
	// Series colors bars, columns and the line.
	Series color.Color
	// Axis colors the axis decoration.
	Axis color.Color
	// Grid colors graph paper lines.
	Grid color.Color
	// Label colors label text.
	Label color.Color
	// Background fills the canvas. Nil leaves it transparent.
	Background color.Color
	// FontSize is the label size.
	FontSize vg.Length
	// LineWidth is the stroke width for lines and decorations.
	LineWidth vg.Length
}

// DefaultTheme returns the standard theme: green series, gray axis, light
// gray grid on white.
func DefaultTheme() Theme {
	return Theme{
		Palette:    DefaultPalette(),
		Series:     color.RGBA{R: 52, G: 199, B: 89, A: 255},
		Axis:       color.RGBA{R: 142, G: 142, B: 147, A: 255},
		Grid:       color.RGBA{R: 217, G: 217, B: 217, A: 255},
		Label:      color.Black,
		Background: color.White,
		FontSize:   vg.Points(10),
		LineWidth:  vg.Points(1),
	}
}

// WedgeColor returns the fill for pie wedge index. Wedges start at the
// second palette entry, so the first wedge is red in the default palette.
func (t Theme) WedgeColor(index int) color.Color {
	return t.Palette.At(index + 1)
}

// Renderer draws frames with a theme.
type Renderer struct {
	Theme  Theme
	Margin float64
}

// New returns a Renderer with the given theme and the default margin.
func New(theme Theme) *Renderer {
	return &Renderer{Theme: theme, Margin: DefaultMargin}
}

// Formats lists the encodings Encode accepts.
func Formats() []string {
	return draw.Formats()
}

// FormatFromPath returns the encoding implied by a file extension.
func FormatFromPath(path string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, f := range Formats() {
		if f == ext {
			return ext, nil
		}
	}
	return "", fmt.Errorf("unsupported image format %q (expected one of %s)", ext, strings.Join(Formats(), ", "))
}

// Size returns the canvas size needed for frame: its bounds plus the margin
// on every side.
func (r *Renderer) Size(frame models.Frame) (w, h vg.Length) {
	return vg.Points(frame.Bounds.MaxX() + 2*r.Margin), vg.Points(frame.Bounds.MaxY() + 2*r.Margin)
}

// Encode draws frame on a new canvas of the given format and writes it to w.
func (r *Renderer) Encode(w io.Writer, frame models.Frame, format string) error {
	width, height := r.Size(frame)
	c, err := draw.NewFormattedCanvas(width, height, strings.ToLower(format))
	if err != nil {
		return err
	}

	r.Draw(draw.New(c), frame)

	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

// WriteFile encodes frame to path. An empty format is taken from the
// file extension.
func (r *Renderer) WriteFile(path string, frame models.Frame, format string) error {
	if format == "" {
		var err error
		if format, err = FormatFromPath(path); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := r.Encode(f, frame, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Draw paints frame onto c. Frame coordinates grow downward from the top
// left; c is flipped accordingly, so c must be the size Size reports.
func (r *Renderer) Draw(c draw.Canvas, frame models.Frame) {
	tr := transform{margin: r.Margin, height: float64(c.Max.Y - c.Min.Y), origin: c.Min}
	theme := r.Theme

	if theme.Background != nil {
		c.SetColor(theme.Background)
		c.Fill(c.Rectangle.Path())
	}

	c.SetLineWidth(theme.LineWidth)
	for _, p := range frame.Decorations {
		if p.Role == models.RoleGrid {
			c.SetColor(theme.Grid)
		} else {
			c.SetColor(theme.Axis)
		}
		r.drawPrimitive(c, tr, p)
	}

	for _, p := range frame.Primitives {
		switch p.Kind {
		case models.PrimitiveWedge:
			c.SetColor(theme.WedgeColor(p.Index))
		default:
			c.SetColor(theme.Series)
		}
		r.drawPrimitive(c, tr, p)
	}

	sty := draw.TextStyle{
		Color:   theme.Label,
		Font:    font.From(plot.DefaultFont, theme.FontSize),
		Handler: plot.DefaultTextHandler,
	}
	for _, a := range frame.Labels {
		if a.Text == "" {
			continue
		}
		pt, xalign, yalign := labelPoint(a)
		sty.XAlign, sty.YAlign = xalign, yalign
		c.FillText(sty, tr.point(pt), a.Text)
	}
}

func (r *Renderer) drawPrimitive(c draw.Canvas, tr transform, p models.Primitive) {
	switch p.Kind {
	case models.PrimitiveRect:
		if p.Rect == nil || p.Rect.W <= 0 || p.Rect.H <= 0 {
			return
		}
		c.Fill(tr.rect(*p.Rect))
	case models.PrimitivePolyline:
		if len(p.Points) < 2 {
			return
		}
		var path vg.Path
		path.Move(tr.point(p.Points[0]))
		for _, pt := range p.Points[1:] {
			path.Line(tr.point(pt))
		}
		c.Stroke(path)
	case models.PrimitiveWedge:
		if p.Wedge == nil || p.Wedge.Radius <= 0 || p.Wedge.Sweep() == 0 {
			return
		}
		c.Fill(tr.wedge(*p.Wedge))
	}
}

// labelPoint returns the anchor point and alignment for a label box.
func labelPoint(a models.Anchor) (models.Point, text.XAlignment, text.YAlignment) {
	center := a.Center()
	switch a.Align {
	case models.AlignLeading:
		return models.Point{X: a.X, Y: center.Y}, text.XLeft, text.YCenter
	case models.AlignTrailing:
		return models.Point{X: a.X + a.W, Y: center.Y}, text.XRight, text.YCenter
	case models.AlignTop:
		return models.Point{X: center.X, Y: a.Y}, text.XCenter, text.YTop
	default:
		return center, text.XCenter, text.YCenter
	}
}

// transform maps frame coordinates (y down) to canvas coordinates (y up).
type transform struct {
	margin float64
	height float64
	origin vg.Point
}

func (t transform) point(p models.Point) vg.Point {
	return vg.Point{
		X: t.origin.X + vg.Points(t.margin+p.X),
		Y: t.origin.Y + vg.Points(t.height-t.margin-p.Y),
	}
}

func (t transform) rect(r models.Rect) vg.Path {
	var path vg.Path
	path.Move(t.point(models.Point{X: r.X, Y: r.Y}))
	path.Line(t.point(models.Point{X: r.MaxX(), Y: r.Y}))
	path.Line(t.point(models.Point{X: r.MaxX(), Y: r.MaxY()}))
	path.Line(t.point(models.Point{X: r.X, Y: r.MaxY()}))
	path.Close()
	return path
}

// wedge builds a closed sector path. Screen angles grow toward +Y, which
// becomes clockwise once y is flipped, so angles are negated.
func (t transform) wedge(w models.Wedge) vg.Path {
	center := t.point(w.Center)
	start := -w.StartAngle * math.Pi / 180
	sweep := -w.Sweep() * math.Pi / 180

	var path vg.Path
	path.Move(center)
	path.Arc(center, vg.Points(w.Radius), start, sweep)
	path.Close()
	return path
}
