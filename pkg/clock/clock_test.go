package clock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fixedCountdown struct {
	remaining uint64
	perMicro  uint64
}

func (f fixedCountdown) Countdown() (uint64, uint64) {
	return f.remaining, f.perMicro
}

func TestClockTick(t *testing.T) {
	var c Clock
	require.Equal(t, uint64(0), c.Millis())
	for i := 0; i < 25; i++ {
		c.Tick()
	}
	require.Equal(t, uint64(25), c.Millis())
	require.Equal(t, uint64(25000), c.Micros())
}

func TestClockMicros(t *testing.T) {
	testCases := []struct {
		name      string
		millis    int
		countdown CountdownSource
		expect    uint64
	}{
		{"no countdown", 2, nil, 2000},
		{"at boundary", 2, fixedCountdown{remaining: 16000, perMicro: 16}, 2000},
		{"mid millisecond", 2, fixedCountdown{remaining: 8000, perMicro: 16}, 2500},
		{"end of millisecond", 0, fixedCountdown{remaining: 0, perMicro: 16}, 1000},
		{"zero scale ignored", 3, fixedCountdown{remaining: 100, perMicro: 0}, 3000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := Clock{Countdown: tc.countdown}
			for i := 0; i < tc.millis; i++ {
				c.Tick()
			}
			require.Equal(t, tc.expect, c.Micros())
		})
	}
}

func TestSimulatedSleep(t *testing.T) {
	var s Simulated
	s.SleepMillis(10)
	require.Equal(t, uint64(10), s.Millis())
	s.SleepMicros(500)
	require.Equal(t, uint64(10500), s.Micros())
	require.Equal(t, uint64(10), s.Millis())
	s.Advance(5)
	require.Equal(t, uint64(15), s.Millis())
}
