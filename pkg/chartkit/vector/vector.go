// Package vector provides the animatable numeric vector that drives every
// chart transition.
//
// A Vector is treated as an immutable value: all operations return a fresh
// slice and leave their inputs untouched, so a vector handed to a layout can
// be read from any goroutine.
package vector

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Vector is an ordered sequence of samples.
type Vector []float64

// Of builds a vector from the given values.
func Of(values ...float64) Vector {
	return Vector(values).Clone()
}

// Len returns the number of components.
func (v Vector) Len() int {
	return len(v)
}

// Clone returns an independent copy. The copy of a nil vector is empty,
// not nil.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// At returns component i, or 0 when i is out of range.
func (v Vector) At(i int) float64 {
	if i < 0 || i >= len(v) {
		return 0
	}
	return v[i]
}

// Last returns the final component, or 0 for an empty vector.
func (v Vector) Last() float64 {
	return v.At(len(v) - 1)
}

// Sum returns the sum of all components.
func (v Vector) Sum() float64 {
	return floats.Sum(v)
}

// Equal reports whether both vectors have the same length and identical
// components.
func (v Vector) Equal(o Vector) bool {
	return floats.Equal(v, o)
}

// EqualApprox is Equal with an absolute or relative tolerance.
func (v Vector) EqualApprox(o Vector, tol float64) bool {
	return floats.EqualApprox(v, o, tol)
}

// Add returns v+o. The shorter operand is zero-padded.
func (v Vector) Add(o Vector) Vector {
	n := max(len(v), len(o))
	return floats.AddTo(make(Vector, n), Pad(v, n, PadZero), Pad(o, n, PadZero))
}

// Sub returns v-o. The shorter operand is zero-padded.
func (v Vector) Sub(o Vector) Vector {
	n := max(len(v), len(o))
	return floats.SubTo(make(Vector, n), Pad(v, n, PadZero), Pad(o, n, PadZero))
}

// Scale returns v multiplied by s.
func (v Vector) Scale(s float64) Vector {
	return floats.ScaleTo(make(Vector, len(v)), s, v)
}

// MagnitudeSquared returns the dot product of v with itself.
func (v Vector) MagnitudeSquared() float64 {
	return floats.Dot(v, v)
}

// String formats the vector with two decimals per component.
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.2f", x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
