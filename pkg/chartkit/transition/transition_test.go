package transition

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/vector"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestTransition_Progress(t *testing.T) {
	tr := Transition{Duration: time.Second, Easing: Linear}

	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{-time.Second, 0},
		{0, 0},
		{250 * time.Millisecond, 0.25},
		{time.Second, 1},
		{2 * time.Second, 1},
	}
	for _, tt := range tests {
		if got := tr.Progress(tt.elapsed); got != tt.want {
			t.Errorf("Progress(%v) = %v, expected %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestTransition_ZeroDurationJumps(t *testing.T) {
	tr := Transition{From: vector.Of(0), To: vector.Of(1, 2)}
	assert.Equal(t, 1.0, tr.Progress(0))
	assert.Equal(t, vector.Of(1, 2), tr.At(0))
}

func TestTransition_AtEndpointsExact(t *testing.T) {
	tr := New(vector.Of(0.1, 0.7), vector.Of(0.3, 0.2, 0.9))

	assert.Equal(t, vector.Of(0.1, 0.7), tr.At(0))
	assert.Equal(t, vector.Of(0.3, 0.2, 0.9), tr.At(tr.Duration))
	assert.Len(t, tr.At(tr.Duration/2), 3)
}

func TestTransition_Frames(t *testing.T) {
	tr := Transition{
		From:   vector.Of(0, 1),
		To:     vector.Of(1, 0, 0.5),
		Easing: Linear,
	}

	frames := tr.Frames(3)
	want := []vector.Vector{
		{0, 1},
		{0.5, 0.5, 0.25},
		{1, 0, 0.5},
	}
	if diff := cmp.Diff(want, frames, approx); diff != "" {
		t.Errorf("Frames(3) mismatch (-want +got):\n%s", diff)
	}

	assert.Nil(t, tr.Frames(0))
	assert.Equal(t, []vector.Vector{{1, 0, 0.5}}, tr.Frames(1))
}

func TestTransition_PieFramesStayMonotone(t *testing.T) {
	tr := Transition{
		From:    vector.Of(0, 90, 360),
		To:      vector.Of(0, 60, 120, 240, 360),
		Easing:  EaseInOut,
		Padding: vector.PadLast,
	}
	for i, f := range tr.Frames(9) {
		for j := 1; j < len(f); j++ {
			assert.GreaterOrEqual(t, f[j], f[j-1], "frame %d index %d", i, j)
		}
	}
}

func TestEasings(t *testing.T) {
	for _, name := range EasingNames() {
		e, err := ParseEasing(name)
		require.NoError(t, err)
		assert.Equal(t, 0.0, e(0), name)
		assert.Equal(t, 1.0, e(1), name)

		prev := 0.0
		for i := 1; i <= 20; i++ {
			v := e(float64(i) / 20)
			assert.GreaterOrEqual(t, v, prev, "%s is not monotone", name)
			prev = v
		}
	}
	assert.InDelta(t, 0.5, EaseInOut(0.5), 1e-12)
}

func TestParseEasing(t *testing.T) {
	for _, name := range []string{"linear", "EaseInOut", "ease_in_out", " ease-out ", "easeIn"} {
		if _, err := ParseEasing(name); err != nil {
			t.Errorf("ParseEasing(%q) returned error: %v", name, err)
		}
	}

	_, err := ParseEasing("bounce")
	assert.ErrorIs(t, err, ErrUnknownEasing)
}
