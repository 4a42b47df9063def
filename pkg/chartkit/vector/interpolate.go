package vector

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Padding selects how the shorter vector is extended when two vectors of
// different lengths are combined.
type Padding int

const (
	// PadZero appends zeros. Bars and columns grow from, or shrink to,
	// nothing when the dataset size changes.
	PadZero Padding = iota
	// PadLast repeats the final component (zero for an empty vector).
	// Cumulative angle vectors stay non-decreasing under this policy, so
	// added or removed pie wedges collapse at the end of the circle.
	PadLast
)

// String returns the policy name.
func (p Padding) String() string {
	switch p {
	case PadZero:
		return "zero"
	case PadLast:
		return "last"
	default:
		return "unknown"
	}
}

// Pad returns a copy of v extended to at least n components.
func Pad(v Vector, n int, p Padding) Vector {
	if len(v) >= n {
		return v.Clone()
	}

	out := make(Vector, n)
	copy(out, v)

	var fill float64
	if p == PadLast {
		fill = v.Last()
	}
	for i := len(v); i < n; i++ {
		out[i] = fill
	}
	return out
}

// Interpolate blends from toward to by t using zero padding.
func Interpolate(from, to Vector, t float64) Vector {
	return InterpolateWith(from, to, t, PadZero)
}

// InterpolateWith blends from toward to by t.
//
// t <= 0 returns a copy of from and t >= 1 returns a copy of to, each with
// its own length, so the endpoints of a transition are reproduced exactly.
// In between, both vectors are padded to the longer length with p and
// result[i] = from[i] + (to[i]-from[i])*t. A NaN t is treated as 0.
func InterpolateWith(from, to Vector, t float64, p Padding) Vector {
	if t <= 0 || math.IsNaN(t) {
		return from.Clone()
	}
	if t >= 1 {
		return to.Clone()
	}

	n := max(len(from), len(to))
	a := Pad(from, n, p)
	b := Pad(to, n, p)

	diff := floats.SubTo(make(Vector, n), b, a)
	return floats.AddScaledTo(make(Vector, n), a, t, diff)
}

// Lerp blends two scalars with the same exact-endpoint rule as Interpolate.
func Lerp(a, b, t float64) float64 {
	if t <= 0 || math.IsNaN(t) {
		return a
	}
	if t >= 1 {
		return b
	}
	return a + (b-a)*t
}
