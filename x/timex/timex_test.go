// x/timex/timex_test.go

package timex

import "testing"

func TestPeriodFromHz(t *testing.T) {
	if PeriodFromHz(1000) != 1_000_000 {
		t.Fatal("1 kHz period wrong")
	}
	if PeriodFromHz(0) != 1_000_000_000 {
		t.Fatal("0 Hz must be coerced to 1 Hz")
	}
}

func TestManualNeverGoesBack(t *testing.T) {
	var m Manual
	m.Set(100)
	m.Set(50)
	m.Advance(-10)
	if m.NowMs() != 100 {
		t.Fatalf("NowMs=%d want 100", m.NowMs())
	}
	m.Advance(16)
	if m.NowMs() != 116 {
		t.Fatalf("NowMs=%d want 116", m.NowMs())
	}
}

func TestClockMonotonic(t *testing.T) {
	c := NewClock()
	a := c.NowMs()
	b := c.NowMs()
	if b < a || a < 0 {
		t.Fatalf("clock went backwards: %d then %d", a, b)
	}
}
