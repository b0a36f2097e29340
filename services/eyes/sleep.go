// services/eyes/sleep.go

package eyes

import "roboeyes-go/x/ramp"

// SleepPhase is the step of the wind-down sequence.
type SleepPhase uint8

const (
	SleepStart SleepPhase = iota
	SleepNormal
	SleepClosing
	SleepDimming
	SleepComplete
)

const (
	sleepNormalMs  = 3000
	sleepClosingMs = 500
	sleepDimmingMs = 2000
)

var sleepNext = [...]SleepPhase{
	SleepStart:    SleepNormal,
	SleepNormal:   SleepClosing,
	SleepClosing:  SleepDimming,
	SleepDimming:  SleepComplete,
	SleepComplete: SleepComplete,
}

var sleepHold = [...]int64{
	SleepStart:    0,
	SleepNormal:   sleepNormalMs,
	SleepClosing:  sleepClosingMs,
	SleepDimming:  sleepDimmingMs,
	SleepComplete: -1,
}

func (p SleepPhase) String() string {
	switch p {
	case SleepStart:
		return "start"
	case SleepNormal:
		return "normal"
	case SleepClosing:
		return "closing"
	case SleepDimming:
		return "dimming"
	case SleepComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// SleepMachine is the sleep sub-machine. Complete is terminal until Reset.
type SleepMachine struct {
	Phase      SleepPhase
	Start      int64
	Brightness uint8
}

// Reset rewinds to Start with a fresh phase time.
func (m *SleepMachine) Reset(now int64) {
	m.Phase = SleepStart
	m.Start = now
}

// Elapsed is the time spent in the current phase.
func (m *SleepMachine) Elapsed(now int64) int64 { return now - m.Start }

// Update advances the sequence and drives the backlight while dimming.
// It reports whether the phase changed.
func (m *SleepMachine) Update(now int64, bl Backlight) bool {
	hold := sleepHold[m.Phase]
	if hold < 0 {
		return false
	}
	elapsed := now - m.Start
	if elapsed < hold {
		if m.Phase == SleepDimming {
			m.Brightness = ramp.LinearAt(BaselineBrightness, 0, elapsed, sleepDimmingMs)
			bl.SetBrightness(m.Brightness)
		}
		return false
	}
	switch m.Phase {
	case SleepStart:
		m.Brightness = BaselineBrightness
		bl.SetBrightness(m.Brightness)
	case SleepDimming:
		m.Brightness = 0
		bl.SetBrightness(0)
	}
	m.Phase = sleepNext[m.Phase]
	m.Start = now
	return true
}
