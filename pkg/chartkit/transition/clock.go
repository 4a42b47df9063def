package transition

import (
	"sync"
	"time"
)

// Clock is the time source a Driver ticks on.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// NewTicker returns a Ticker that delivers the time every d.
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers ticks of a Clock at a fixed interval.
type Ticker interface {
	// C returns the channel on which the ticks are delivered.
	C() <-chan time.Time

	// Stop turns off the ticker.
	Stop()
}

// RealClock implements Clock with the time package.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// NewTicker returns a ticker backed by time.Ticker.
func (RealClock) NewTicker(d time.Duration) Ticker {
	return &realTicker{ticker: time.NewTicker(d)}
}

type realTicker struct {
	ticker *time.Ticker
}

func (t *realTicker) C() <-chan time.Time { return t.ticker.C }
func (t *realTicker) Stop()               { t.ticker.Stop() }

// StepClock is a deterministic Clock for tests. Its tickers never wait:
// every tick moves the clock forward by exactly the ticker interval, so a
// transition sampled with a StepClock yields the same frames on every run.
type StepClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewStepClock returns a StepClock set to start.
func NewStepClock(start time.Time) *StepClock {
	return &StepClock{now: start}
}

// Now returns the clock's current time.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new time.
func (c *StepClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// NewTicker returns a ticker that advances the clock by d per tick.
func (c *StepClock) NewTicker(d time.Duration) Ticker {
	t := &stepTicker{
		ch:   make(chan time.Time),
		stop: make(chan struct{}),
	}
	go t.run(c, d)
	return t
}

type stepTicker struct {
	ch   chan time.Time
	stop chan struct{}
	once sync.Once
}

func (t *stepTicker) run(c *StepClock, d time.Duration) {
	for {
		c.mu.Lock()
		next := c.now.Add(d)
		c.mu.Unlock()

		select {
		case t.ch <- next:
			c.mu.Lock()
			c.now = next
			c.mu.Unlock()
		case <-t.stop:
			return
		}
	}
}

func (t *stepTicker) C() <-chan time.Time { return t.ch }

func (t *stepTicker) Stop() {
	t.once.Do(func() { close(t.stop) })
}
