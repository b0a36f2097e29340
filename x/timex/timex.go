// x/timex/timex.go

package timex

import "time"

// Clock reports monotonic milliseconds since it was created.
type Clock struct{ start time.Time }

// NewClock starts a clock at zero.
func NewClock() *Clock { return &Clock{start: time.Now()} }

// NowMs returns milliseconds since boot. Never decreases.
func (c *Clock) NowMs() int64 { return time.Since(c.start).Milliseconds() }

// PeriodFromHz returns a nanosecond period for a requested frequency.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint32) uint64 {
	if freqHz == 0 {
		freqHz = 1
	}
	return uint64(1_000_000_000 / uint64(freqHz))
}

// Manual is a hand-stepped clock for tests and the simulator.
type Manual struct{ ms int64 }

func (m *Manual) NowMs() int64 { return m.ms }

// Set moves the clock to ms; earlier values are ignored.
func (m *Manual) Set(ms int64) {
	if ms > m.ms {
		m.ms = ms
	}
}

// Advance moves the clock forward by d milliseconds.
func (m *Manual) Advance(d int64) {
	if d > 0 {
		m.ms += d
	}
}
