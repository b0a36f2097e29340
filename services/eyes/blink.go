// services/eyes/blink.go

package eyes

const (
	blinkDurationMs = 200
	blinkIntervalMs = 3100
)

// updateBlink starts a blink when one is due and ends it after exactly
// blinkDurationMs. It returns true on the tick the blink ends so the open
// eyes are drawn straight away.
func (s *EyeState) updateBlink(now int64) bool {
	b := &s.Blink
	if !b.Active && now >= b.Next {
		b.Active = true
		b.Start = now
		b.Next = now + blinkDurationMs + blinkIntervalMs
	}
	if b.Active && now-b.Start >= blinkDurationMs {
		b.Active = false
		return true
	}
	return false
}
