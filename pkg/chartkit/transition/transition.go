// Package transition samples the interpolation between two vectors over
// time. A Transition is a pure description; a Driver ticks it on a Clock.
package transition

import (
	"time"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/vector"
)

// DefaultDuration matches the length of a toggle animation.
const DefaultDuration = 500 * time.Millisecond

// Transition describes an animation from one vector to another.
type Transition struct {
	// From is the vector shown at the start.
	From vector.Vector
	// To is the vector shown at the end.
	To vector.Vector
	// Duration is the wall time the transition takes. A non-positive
	// duration jumps straight to To.
	Duration time.Duration
	// Easing shapes progress. Nil means Linear.
	Easing Easing
	// Padding extends the shorter vector while lengths differ.
	Padding vector.Padding
}

// New returns a Transition with the default duration, ease-in-out easing
// and zero padding.
func New(from, to vector.Vector) Transition {
	return Transition{
		From:     from,
		To:       to,
		Duration: DefaultDuration,
		Easing:   EaseInOut,
		Padding:  vector.PadZero,
	}
}

// Progress returns the eased progress at elapsed, clamped to [0,1].
func (tr Transition) Progress(elapsed time.Duration) float64 {
	if tr.Duration <= 0 || elapsed >= tr.Duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}

	t := float64(elapsed) / float64(tr.Duration)
	if tr.Easing != nil {
		t = tr.Easing(t)
	}
	return t
}

// At returns the interpolated vector at elapsed.
func (tr Transition) At(elapsed time.Duration) vector.Vector {
	return vector.InterpolateWith(tr.From, tr.To, tr.Progress(elapsed), tr.Padding)
}

// Frames samples the transition at n evenly spaced instants including both
// ends. n == 1 yields only To and n <= 0 yields nothing.
func (tr Transition) Frames(n int) []vector.Vector {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []vector.Vector{tr.To.Clone()}
	}

	frames := make([]vector.Vector, n)
	for i := range frames {
		t := float64(i) / float64(n-1)
		if tr.Easing != nil {
			t = tr.Easing(t)
		}
		frames[i] = vector.InterpolateWith(tr.From, tr.To, t, tr.Padding)
	}
	return frames
}
