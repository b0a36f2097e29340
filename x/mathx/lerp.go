// x/mathx/lerp.go

package mathx

// Progress returns elapsed/duration in [0, 1].
// A non-positive duration counts as already complete.
func Progress(elapsed, duration int64) float32 {
	if duration <= 0 {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= duration {
		return 1
	}
	return float32(elapsed) / float32(duration)
}

// Lerp moves from a towards b by t in [0, 1]. The fractional part of the
// step is truncated towards zero, so the result is monotonic in t and
// equals b exactly at t == 1.
func Lerp(a, b int, t float32) int {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a + int(float32(b-a)*t)
}

// Scale returns int(float32(span) * t) with t clamped to [0, 1].
func Scale(span int, t float32) int {
	return int(float32(span) * Clamp(t, 0, 1))
}
