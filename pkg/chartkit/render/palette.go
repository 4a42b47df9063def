package render

import (
	"image/color"
	"math"
)

// Palette is an ordered set of fill colors indexed by data position.
type Palette []color.Color

// At returns the color for data index i, cycling through the palette.
func (p Palette) At(i int) color.Color {
	if len(p) == 0 {
		return color.Black
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

// DefaultPalette returns the standard wedge colors.
func DefaultPalette() Palette {
	return Palette{
		color.RGBA{R: 0, G: 122, B: 255, A: 255},   // blue
		color.RGBA{R: 255, G: 59, B: 48, A: 255},   // red
		color.RGBA{R: 52, G: 199, B: 89, A: 255},   // green
		color.RGBA{R: 255, G: 149, B: 0, A: 255},   // orange
		color.RGBA{R: 175, G: 82, B: 222, A: 255},  // purple
		color.RGBA{R: 255, G: 204, B: 0, A: 255},   // yellow
		color.RGBA{R: 26, G: 191, B: 191, A: 255},  // teal
		color.RGBA{R: 142, G: 142, B: 147, A: 255}, // gray
		color.RGBA{R: 0, G: 0, B: 0, A: 255},       // black
	}
}

// HuePalette returns n colors evenly spaced around the hue circle.
func HuePalette(n int) Palette {
	if n <= 0 {
		return nil
	}
	colors := make(Palette, n)
	for i := range colors {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL components in [0,1] to 8-bit RGB.
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	if s == 0 {
		v := to8(l)
		return v, v, v
	}

	q := l + s - l*s
	if l < 0.5 {
		q = l * (1 + s)
	}
	p := 2*l - q
	return to8(hueToRGB(p, q, h+1.0/3.0)), to8(hueToRGB(p, q, h)), to8(hueToRGB(p, q, h-1.0/3.0))
}

func hueToRGB(p, q, t float64) float64 {
	t -= math.Floor(t)
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
