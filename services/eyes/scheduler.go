// services/eyes/scheduler.go

package eyes

// BaselineBrightness is the backlight level outside the sleep ramp.
const BaselineBrightness uint8 = 200

// advanceMode switches to the next mode once the current one has dwelt
// long enough and runs the entry actions of the new mode. The first call
// only stamps the entry time.
func (s *EyeState) advanceMode(now int64, bl Backlight) bool {
	if !s.modeStarted {
		s.modeStarted = true
		s.ModeStart = now
		return false
	}
	if now-s.ModeStart < s.Mode.Dwell() {
		return false
	}
	s.Mode = s.Mode.Next()
	s.ModeStart = now
	switch s.Mode {
	case ModeIdle:
		bl.SetBrightness(BaselineBrightness)
	case ModeSlotGame:
		s.Slot.Reset(now)
	case ModeSleep:
		s.Sleep.Reset(now)
	}
	return true
}
