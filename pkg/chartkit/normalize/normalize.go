package normalize

import (
	"github.com/ukaji3/chartkit-go/pkg/chartkit/vector"
)

// FullCircle is the sweep of a complete pie, in degrees.
const FullCircle = 360.0

// Normalize converts samples into fractions of the value range.
//
// With an explicit range r, each fraction is (v-r.Min)/(r.Max-r.Min) and
// values outside r produce fractions outside [0,1]; nothing is clamped. An
// explicit range with Max <= Min fails with ErrDegenerateRange.
//
// Without r the range is derived from the samples. When every sample has the
// same value the derived range has no width; in that case each fraction is 1
// for a positive sample and 0 otherwise.
func Normalize(samples []float64, r *Range) (vector.Vector, error) {
	bounds, err := Bounds(samples, r)
	if err != nil {
		return nil, err
	}

	out := make(vector.Vector, len(samples))
	if r == nil && bounds.IsSingleValue() {
		for i, v := range samples {
			if v > 0 {
				out[i] = 1
			}
		}
		return out, nil
	}

	for i, v := range samples {
		out[i] = bounds.Fraction(v)
	}
	return out, nil
}

// NormalizeAngular converts samples into cumulative pie angles in degrees.
//
// The result has len(samples)+1 elements and starts with a 0 sentinel, so
// wedge i spans [out[i], out[i+1]]. With an explicit range, sweep i is
// (v-r.Min)/(r.Max-r.Min)*360. Without one, sweep i is v/sum*360 and a zero
// sum fails with ErrInvalidPieSum. Negative samples are not rejected; they
// produce backward sweeps.
func NormalizeAngular(samples []float64, r *Range) (vector.Vector, error) {
	if r != nil {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}

	out := make(vector.Vector, len(samples)+1)
	if len(samples) == 0 {
		return out, nil
	}

	var sweep func(v float64) float64
	if r != nil {
		sweep = func(v float64) float64 { return r.Fraction(v) * FullCircle }
	} else {
		sum := vector.Vector(samples).Sum()
		if sum == 0 {
			return nil, ErrInvalidPieSum
		}
		sweep = func(v float64) float64 { return v / sum * FullCircle }
	}

	var start float64
	for i, v := range samples {
		start += sweep(v)
		out[i+1] = start
	}
	return out, nil
}

// Clamp returns a copy of v with every component limited to [0,1].
func Clamp(v vector.Vector) vector.Vector {
	out := v.Clone()
	for i, x := range out {
		switch {
		case x < 0:
			out[i] = 0
		case x > 1:
			out[i] = 1
		}
	}
	return out
}
