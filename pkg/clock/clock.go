package clock

import (
	"sync/atomic"
)

// Source is the time surface consumers depend on. It decouples the bus
// and protocol layers from the live tick interrupt so tests can run on
// a simulated clock.
type Source interface {
	// Millis returns milliseconds since the counter started.
	Millis() uint64
	// Micros returns microseconds since the counter started.
	Micros() uint64
	// SleepMillis blocks for d milliseconds.
	SleepMillis(d uint64)
	// SleepMicros blocks for d microseconds.
	SleepMicros(d uint64)
}

// CountdownSource exposes the periodic timer's countdown register, used
// to refine Micros below the millisecond boundary.
type CountdownSource interface {
	// Countdown returns the ticks remaining until the next millisecond
	// boundary and the number of timer ticks per microsecond.
	Countdown() (remaining, ticksPerMicro uint64)
}

// Clock is the process-wide monotonic millisecond counter. It is
// advanced only by Tick, the timer interrupt analog; every reader sees
// a value that never decreases. The zero value is ready to use.
type Clock struct {
	millis uint64

	// Countdown, when set, contributes the sub-millisecond part of
	// Micros. Without it Micros has millisecond granularity.
	Countdown CountdownSource
}

// Tick advances the counter by one millisecond. Only the timer driver
// may call it; it is safe to run concurrently with any reader.
func (c *Clock) Tick() {
	atomic.AddUint64(&c.millis, 1)
}

// Millis returns the current counter value.
func (c *Clock) Millis() uint64 {
	return atomic.LoadUint64(&c.millis)
}

// Micros returns Millis scaled to microseconds plus the elapsed part of
// the current millisecond derived from the timer countdown.
func (c *Clock) Micros() uint64 {
	us := c.Millis() * 1000
	if c.Countdown != nil {
		remaining, perMicro := c.Countdown.Countdown()
		if perMicro > 0 {
			us += 1000 - remaining/perMicro
		}
	}
	return us
}

// SleepMillis spins until d milliseconds have passed. The calling
// context is assumed to have nothing else useful to do.
func (c *Clock) SleepMillis(d uint64) {
	until := c.Millis() + d
	for c.Millis() < until {
	}
}

// SleepMicros spins until d microseconds have passed.
func (c *Clock) SleepMicros(d uint64) {
	until := c.Micros() + d
	for c.Micros() < until {
	}
}
