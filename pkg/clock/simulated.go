package clock

// Simulated is a Source for tests: sleeping advances time immediately
// instead of blocking, so timeout paths run without a live tick.
type Simulated struct {
	micros uint64
}

// Millis returns the simulated milliseconds.
func (s *Simulated) Millis() uint64 {
	return s.micros / 1000
}

// Micros returns the simulated microseconds.
func (s *Simulated) Micros() uint64 {
	return s.micros
}

// SleepMillis advances the simulated time by d milliseconds.
func (s *Simulated) SleepMillis(d uint64) {
	s.micros += d * 1000
}

// SleepMicros advances the simulated time by d microseconds.
func (s *Simulated) SleepMicros(d uint64) {
	s.micros += d
}

// Advance moves the simulated time forward by d milliseconds, as an
// external event would.
func (s *Simulated) Advance(d uint64) {
	s.micros += d * 1000
}
