package transition

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/vector"
)

func TestDriver_RunStepClock(t *testing.T) {
	clock := NewStepClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	d := NewDriver(100*time.Millisecond, WithClock(clock))

	tr := Transition{
		From:     vector.Of(0, 1),
		To:       vector.Of(1, 0),
		Duration: 500 * time.Millisecond,
		Easing:   Linear,
	}

	var samples []Sample
	err := d.Run(context.Background(), tr, func(s Sample) error {
		samples = append(samples, s)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, samples, 6)

	for i, s := range samples {
		assert.Equal(t, i, s.Frame)
		assert.Equal(t, time.Duration(i)*100*time.Millisecond, s.Elapsed)
		assert.InDelta(t, float64(i)/5, s.Progress, 1e-9)
	}
	assert.Equal(t, vector.Of(0, 1), samples[0].Vector)
	assert.Equal(t, vector.Of(1, 0), samples[5].Vector)
}

func TestDriver_ZeroDuration(t *testing.T) {
	d := NewDriver(0, WithClock(NewStepClock(time.Time{})))
	assert.Equal(t, DefaultInterval, d.Interval())

	calls := 0
	err := d.Run(context.Background(), Transition{To: vector.Of(3)}, func(s Sample) error {
		calls++
		assert.Equal(t, vector.Of(3), s.Vector)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDriver_Cancel(t *testing.T) {
	d := NewDriver(time.Millisecond, WithClock(NewStepClock(time.Time{})))
	tr := Transition{From: vector.Of(0), To: vector.Of(1), Duration: time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := d.Run(ctx, tr, func(s Sample) error {
		if s.Frame == 2 {
			cancel()
		}
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDriver_AlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := NewDriver(0).Run(ctx, New(vector.Of(0), vector.Of(1)), func(Sample) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestDriver_CallbackError(t *testing.T) {
	d := NewDriver(10*time.Millisecond, WithClock(NewStepClock(time.Time{})))
	stop := errors.New("stop")

	err := d.Run(context.Background(), New(vector.Of(0), vector.Of(1)), func(s Sample) error {
		if s.Frame == 3 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
}

func TestDriver_RealClock(t *testing.T) {
	d := NewDriver(5 * time.Millisecond)
	tr := Transition{
		From:     vector.Of(0),
		To:       vector.Of(1),
		Duration: 40 * time.Millisecond,
		Easing:   EaseInOut,
	}

	var last Sample
	frames := 0
	err := d.Run(context.Background(), tr, func(s Sample) error {
		assert.GreaterOrEqual(t, s.Progress, last.Progress)
		last = s
		frames++
		return nil
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, frames, 2)
	assert.Equal(t, 1.0, last.Progress)
	assert.Equal(t, vector.Of(1), last.Vector)
}
