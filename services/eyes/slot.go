// services/eyes/slot.go

package eyes

// SlotPhase is the step of the slot-machine mini game.
type SlotPhase uint8

const (
	SlotStart SlotPhase = iota
	SlotSpinning
	SlotResult
	SlotEnd
)

const (
	slotIntroMs  = 1500
	slotSpinMs   = 3000
	slotResultMs = 3000
	slotOutroMs  = 1500

	slotMin = 1
	slotMax = 20
)

var slotNext = [...]SlotPhase{
	SlotStart:    SlotSpinning,
	SlotSpinning: SlotResult,
	SlotResult:   SlotEnd,
	SlotEnd:      SlotEnd,
}

func (p SlotPhase) String() string {
	switch p {
	case SlotStart:
		return "start"
	case SlotSpinning:
		return "spinning"
	case SlotResult:
		return "result"
	case SlotEnd:
		return "end"
	default:
		return "unknown"
	}
}

// SlotMachine is the slot sub-machine. End is terminal until Reset.
type SlotMachine struct {
	Phase  SlotPhase
	Start  int64 // phase entry
	SpinMs int64
	Result int
}

// Reset rewinds to Start with a fresh phase time.
func (m *SlotMachine) Reset(now int64) {
	*m = SlotMachine{Phase: SlotStart, Start: now}
}

// Elapsed is the time spent in the current phase.
func (m *SlotMachine) Elapsed(now int64) int64 { return now - m.Start }

func (m *SlotMachine) hold() int64 {
	switch m.Phase {
	case SlotStart:
		return slotIntroMs
	case SlotSpinning:
		return m.SpinMs
	case SlotResult:
		return slotResultMs
	default:
		return -1
	}
}

// Update moves to the next phase once the current one has run its course.
// It reports whether the phase changed.
func (m *SlotMachine) Update(now int64, rnd Rand) bool {
	hold := m.hold()
	if hold < 0 || now-m.Start < hold {
		return false
	}
	next := slotNext[m.Phase]
	switch next {
	case SlotSpinning:
		m.SpinMs = slotSpinMs
	case SlotResult:
		m.Result = rnd.IntRange(slotMin, slotMax)
	}
	m.Phase = next
	m.Start = now
	return true
}
