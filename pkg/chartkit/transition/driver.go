package transition

import (
	"context"
	"log/slog"
	"time"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/vector"
)

// DefaultInterval is the frame interval used when none is given (60 fps).
const DefaultInterval = time.Second / 60

// Sample is one frame produced while a transition runs.
type Sample struct {
	// Frame is the zero-based frame number.
	Frame int
	// Elapsed is the time since the transition started, capped at its
	// duration.
	Elapsed time.Duration
	// Progress is the eased progress in [0,1].
	Progress float64
	// Vector is the interpolated vector for this frame.
	Vector vector.Vector
}

// Driver runs transitions against a Clock.
type Driver struct {
	clock    Clock
	interval time.Duration
	logger   *slog.Logger
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithClock sets the clock the driver ticks on.
func WithClock(c Clock) DriverOption {
	return func(d *Driver) {
		d.clock = c
	}
}

// WithLogger sets the logger used for frame timing.
func WithLogger(l *slog.Logger) DriverOption {
	return func(d *Driver) {
		d.logger = l
	}
}

// NewDriver returns a Driver that samples every interval. A non-positive
// interval selects DefaultInterval.
func NewDriver(interval time.Duration, opts ...DriverOption) *Driver {
	if interval <= 0 {
		interval = DefaultInterval
	}
	d := &Driver{
		clock:    RealClock{},
		interval: interval,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Interval returns the time between frames.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Run calls fn with the transition's first frame immediately and then once
// per tick until the final frame at full progress has been delivered. It
// returns ctx.Err() if ctx is cancelled first, or the first error fn returns.
func (d *Driver) Run(ctx context.Context, tr Transition, fn func(Sample) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := d.clock.Now()
	frame := 0
	emit := func(elapsed time.Duration) error {
		s := Sample{
			Frame:    frame,
			Elapsed:  elapsed,
			Progress: tr.Progress(elapsed),
			Vector:   tr.At(elapsed),
		}
		d.logger.Debug("transition frame",
			"frame", s.Frame,
			"elapsed", s.Elapsed,
			"progress", s.Progress)
		frame++
		return fn(s)
	}

	if tr.Duration <= 0 {
		return emit(0)
	}
	if err := emit(0); err != nil {
		return err
	}

	ticker := d.clock.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Debug("transition cancelled", "frames", frame)
			return ctx.Err()
		case now := <-ticker.C():
			elapsed := now.Sub(start)
			if elapsed >= tr.Duration {
				if err := emit(tr.Duration); err != nil {
					return err
				}
				d.logger.Debug("transition complete", "frames", frame, "duration", tr.Duration)
				return nil
			}
			if err := emit(elapsed); err != nil {
				return err
			}
		}
	}
}
