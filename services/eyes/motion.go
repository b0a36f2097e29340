// services/eyes/motion.go

package eyes

import "roboeyes-go/x/mathx"

const (
	moveDurationMs = 200
	moveIntervalMs = 3000

	// Window for the first shift after boot.
	firstMoveMinMs = 2000
	firstMoveMaxMs = 5000

	maxGazeOffset = eyeWidth / 4
)

// updateMotion starts a gaze shift when one is due and advances the one in
// progress. It reports whether the offsets were recomputed.
func (s *EyeState) updateMotion(now int64, rnd Rand) bool {
	m := &s.Motion
	if !m.Moving && now >= m.Next {
		m.Moving = true
		m.Start = now
		m.FromL, m.FromR = s.Left, s.Right
		if m.Centered {
			// Both eyes get the same offset so the gaze stays conjugate.
			p := Point{
				X: rnd.IntRange(-maxGazeOffset, maxGazeOffset),
				Y: rnd.IntRange(-maxGazeOffset, maxGazeOffset),
			}
			m.ToL, m.ToR = p, p
		} else {
			m.ToL, m.ToR = Point{}, Point{}
		}
		m.Centered = !m.Centered
		m.Next = now + moveDurationMs + moveIntervalMs
	}
	if !m.Moving {
		return false
	}

	elapsed := now - m.Start
	if elapsed >= moveDurationMs {
		m.Moving = false
		s.Left, s.Right = m.ToL, m.ToR
		return true
	}
	t := mathx.Progress(elapsed, moveDurationMs)
	s.Left = lerpPoint(m.FromL, m.ToL, t)
	s.Right = lerpPoint(m.FromR, m.ToR, t)
	return true
}

func lerpPoint(a, b Point, t float32) Point {
	return Point{X: mathx.Lerp(a.X, b.X, t), Y: mathx.Lerp(a.Y, b.Y, t)}
}
