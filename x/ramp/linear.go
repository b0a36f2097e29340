// x/ramp/linear.go

package ramp

import "roboeyes-go/x/mathx"

// LinearAt evaluates an integer ramp from 'from' to 'to' over durationMs at
// elapsedMs, without blocking. The step is truncated towards zero so the
// level moves monotonically and lands exactly on 'to' once elapsedMs
// reaches durationMs. durationMs<=0 snaps to 'to'.
func LinearAt(from, to uint8, elapsedMs, durationMs int64) uint8 {
	if durationMs <= 0 || elapsedMs >= durationMs {
		return to
	}
	if elapsedMs <= 0 {
		return from
	}
	d := int64(to) - int64(from)
	lvl := int64(from) + d*elapsedMs/durationMs
	return uint8(mathx.Clamp(lvl, 0, 255))
}
