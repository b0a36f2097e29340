// services/eyes/state.go

package eyes

// Point is an integer pixel offset from an eye's resting position.
type Point struct {
	X, Y int
}

// ---- Mode ----

type Mode uint8

const (
	ModeIdle Mode = iota
	ModeSlotGame
	ModeSleep
	modeCount
)

// Dwell durations in ms.
const (
	idleDwellMs  = 9000
	slotDwellMs  = 10000
	sleepDwellMs = 10000
)

var modeNext = [modeCount]Mode{
	ModeIdle:     ModeSlotGame,
	ModeSlotGame: ModeSleep,
	ModeSleep:    ModeIdle,
}

var modeDwell = [modeCount]int64{
	ModeIdle:     idleDwellMs,
	ModeSlotGame: slotDwellMs,
	ModeSleep:    sleepDwellMs,
}

// Next is the mode that follows m.
func (m Mode) Next() Mode {
	if m >= modeCount {
		return ModeIdle
	}
	return modeNext[m]
}

// Dwell is how long m stays active, in ms.
func (m Mode) Dwell() int64 {
	if m >= modeCount {
		return idleDwellMs
	}
	return modeDwell[m]
}

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeSlotGame:
		return "slot"
	case ModeSleep:
		return "sleep"
	default:
		return "unknown"
	}
}

// ---- EyeState ----

// Motion is the idle gaze shift in progress (or the next one pending).
type Motion struct {
	Moving bool
	Start  int64
	Next   int64 // earliest start of the next shift

	FromL, FromR Point
	ToL, ToR     Point

	// Centered is true while the gaze rests at (or heads to) the centre;
	// the next shift then picks a random offset.
	Centered bool
}

// Blink tracks the idle blink timer.
type Blink struct {
	Active bool
	Start  int64
	Next   int64
}

// Closed reports whether the eyes render shut at now.
func (b Blink) Closed(now int64) bool {
	return b.Active && now-b.Start < blinkDurationMs
}

// EyeState is the whole animation state. Only the engine's tick mutates it.
type EyeState struct {
	Left, Right         Point
	PrevLeft, PrevRight Point

	Motion Motion
	Blink  Blink

	Mode        Mode
	ModeStart   int64
	modeStarted bool

	Slot  SlotMachine
	Sleep SleepMachine
}

// newEyeState builds the boot state with every timer relative to now.
func newEyeState(now int64, rnd Rand) EyeState {
	return EyeState{
		Mode: ModeIdle,
		Motion: Motion{
			Next:     now + int64(rnd.IntRange(firstMoveMinMs, firstMoveMaxMs)),
			Centered: true,
		},
		Blink: Blink{Next: now + blinkIntervalMs},
		Slot:  SlotMachine{Phase: SlotStart, Start: now},
		Sleep: SleepMachine{Phase: SleepStart, Start: now, Brightness: BaselineBrightness},
	}
}
