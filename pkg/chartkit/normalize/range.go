// Package normalize converts raw samples into the fractional and angular
// vectors consumed by the chart layouts.
package normalize

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ErrDegenerateRange indicates an explicit range whose width is not positive.
var ErrDegenerateRange = errors.New("degenerate value range")

// ErrInvalidPieSum indicates angular normalization of samples that sum to zero.
var ErrInvalidPieSum = errors.New("pie samples sum to zero")

// Range is a closed value interval used to scale samples.
type Range struct {
	Min float64 `json:"min" mapstructure:"min"`
	Max float64 `json:"max" mapstructure:"max"`
}

// RangeError reports an unusable explicit range.
type RangeError struct {
	Range Range
	Err   error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range [%g, %g]: %v", e.Range.Min, e.Range.Max, e.Err)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}

// Width returns Max - Min.
func (r Range) Width() float64 {
	return r.Max - r.Min
}

// IsSingleValue reports whether Min and Max are the same value. Narrow but
// non-empty ranges, such as nanosecond timings, are not single values.
func (r Range) IsSingleValue() bool {
	return r.Width() == 0
}

// Validate checks that Min < Max.
func (r Range) Validate() error {
	if !(r.Max > r.Min) {
		return &RangeError{Range: r, Err: ErrDegenerateRange}
	}
	return nil
}

// Fraction maps v into the range, where Min is 0 and Max is 1.
func (r Range) Fraction(v float64) float64 {
	return (v - r.Min) / r.Width()
}

// Denormalize maps a fraction back into data units.
func (r Range) Denormalize(f float64) float64 {
	return r.Min + f*r.Width()
}

// String formats the range as "min:max".
func (r Range) String() string {
	return strconv.FormatFloat(r.Min, 'g', -1, 64) + ":" + strconv.FormatFloat(r.Max, 'g', -1, 64)
}

// ParseRange parses "min:max" (also accepts "min..max" and "min,max").
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)

	var parts []string
	for _, sep := range []string{"..", ":", ","} {
		if idx := strings.LastIndex(s, sep); idx > 0 {
			parts = []string{s[:idx], s[idx+len(sep):]}
			break
		}
	}
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("invalid range %q: expected min:max", s)
	}

	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range minimum %q: %w", parts[0], err)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range maximum %q: %w", parts[1], err)
	}

	r := Range{Min: lo, Max: hi}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Bounds resolves the range used to scale samples: r when given (after
// validation), otherwise the minimum and maximum of samples. Empty samples
// without an explicit range yield the zero Range.
func Bounds(samples []float64, r *Range) (Range, error) {
	if r != nil {
		if err := r.Validate(); err != nil {
			return Range{}, err
		}
		return *r, nil
	}

	if len(samples) == 0 {
		return Range{}, nil
	}
	return Range{Min: floats.Min(samples), Max: floats.Max(samples)}, nil
}
