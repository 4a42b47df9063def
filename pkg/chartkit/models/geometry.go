// Package models defines data structures for chart layout.
package models

import "math"

// Point is a position in drawing units. The origin is the top-left corner
// and Y grows downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle in drawing units.
type Rect struct {
	// X is the left edge.
	X float64 `json:"x"`
	// Y is the top edge.
	Y float64 `json:"y"`
	// W is the width.
	W float64 `json:"w"`
	// H is the height.
	H float64 `json:"h"`
}

// NewRect returns a rectangle of the given size anchored at the origin.
func NewRect(w, h float64) Rect {
	return Rect{W: w, H: h}
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 {
	return r.X + r.W
}

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 {
	return r.Y + r.H
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports whether the rectangle has no drawable area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inset shrinks the rectangle by d on every side. The result never has a
// negative size.
func (r Rect) Inset(d float64) Rect {
	out := Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
	out.W = math.Max(out.W, 0)
	out.H = math.Max(out.H, 0)
	return out
}
