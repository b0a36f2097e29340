// services/eyes/deps.go

package eyes

import (
	"image/color"
	"math/rand"

	"roboeyes-go/bus"
)

// Clock returns monotonic milliseconds. Successive readings never decrease.
type Clock interface {
	NowMs() int64
}

// Rand draws uniformly from [lo, hi], both ends inclusive.
type Rand interface {
	IntRange(lo, hi int) int
}

// Canvas is the offscreen surface a frame is composed on. Nothing is
// visible until Present.
type Canvas interface {
	Size() (w, h int16)
	Clear(c color.RGBA)
	FillRoundRect(x, y, w, h, r int16, c color.RGBA)
	FillCircle(x, y, r int16, c color.RGBA)
	DrawLine(x0, y0, x1, y1 int16, c color.RGBA)
	DrawText(x, y, size int16, text string, c color.RGBA)
	Present(x, y int16) error
}

// Backlight sets panel brightness in 0..255.
type Backlight interface {
	SetBrightness(level uint8)
}

// Deps is everything the core talks to. Conn is optional; without it no
// events are published.
type Deps struct {
	Clock     Clock
	Rand      Rand
	Canvas    Canvas
	Backlight Backlight
	Conn      *bus.Connection
}

// MathRand adapts math/rand to Rand.
type MathRand struct{ r *rand.Rand }

func NewMathRand(seed int64) *MathRand {
	return &MathRand{r: rand.New(rand.NewSource(seed))}
}

func (m *MathRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + m.r.Intn(hi-lo+1)
}
