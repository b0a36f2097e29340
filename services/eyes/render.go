// services/eyes/render.go

package eyes

import (
	"image/color"

	"roboeyes-go/x/mathx"
)

var (
	colorEye        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorBackground = color.RGBA{A: 255}
)

var digitText = [10]string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

// Frame is everything the renderer needs for one picture.
type Frame struct {
	Mode        Mode
	Left, Right Point
	Closed      bool

	Slot       SlotPhase
	SlotResult int
	Sleep      SleepPhase

	// Elapsed is the time spent in the current slot or sleep phase.
	Elapsed int64
}

// Frame captures the state at now for rendering.
func (s *EyeState) Frame(now int64) Frame {
	f := Frame{
		Mode:       s.Mode,
		Left:       s.Left,
		Right:      s.Right,
		Closed:     s.Blink.Closed(now),
		Slot:       s.Slot.Phase,
		SlotResult: s.Slot.Result,
		Sleep:      s.Sleep.Phase,
	}
	switch s.Mode {
	case ModeSlotGame:
		f.Elapsed = s.Slot.Elapsed(now)
	case ModeSleep:
		f.Elapsed = s.Sleep.Elapsed(now)
	}
	return f
}

// Render clears c and draws f on it. It does not present.
func Render(c Canvas, l Layout, f Frame) {
	c.Clear(colorBackground)
	switch f.Mode {
	case ModeIdle:
		if f.Closed {
			drawClosed(c, l, f.Left.X, f.Right.X, f.Left.Y)
		} else {
			drawEyes(c, l, l.LeftX+f.Left.X, l.RightX+f.Right.X, l.RestY+f.Left.Y)
		}
	case ModeSlotGame:
		drawSlot(c, l, f)
	case ModeSleep:
		drawSleep(c, l, f)
	}
}

func drawSlot(c Canvas, l Layout, f Frame) {
	switch f.Slot {
	case SlotStart:
		// Eyes slide down and out while the first digits stream in from
		// above at the same speed.
		shift := mathx.Scale(l.H, mathx.Progress(f.Elapsed, slotIntroMs))
		drawEyes(c, l, l.LeftX, l.RightX, l.RestY+shift)
		for i := 0; i < introDigits; i++ {
			y := introDigitTop + shift + i*digitStride
			d := (1 + i) % 10
			drawDigit(c, l, l.LeftCX-introInset, y, d)
			drawDigit(c, l, l.RightCX-introInset, y, d)
		}
	case SlotSpinning:
		drawReel(c, l, l.LeftCX-digitInset, f.Elapsed, leftReelPeriodMs)
		drawReel(c, l, l.RightCX-digitInset, f.Elapsed, rightReelPeriodMs)
	case SlotResult:
		y := l.CY - digitLift
		drawDigit(c, l, l.LeftCX-digitInset, y, f.SlotResult/10)
		drawDigit(c, l, l.RightCX-digitInset, y, f.SlotResult%10)
	case SlotEnd:
		if f.Elapsed >= slotOutroMs {
			drawEyes(c, l, l.LeftX, l.RightX, l.RestY)
			return
		}
		p := mathx.Progress(f.Elapsed, slotOutroMs)
		if p < 0.5 {
			// Result scrolls up and out.
			y := l.CY - digitLift - mathx.Scale(l.H, p/0.5)
			drawDigit(c, l, l.LeftCX-digitInset, y, f.SlotResult/10)
			drawDigit(c, l, l.RightCX-digitInset, y, f.SlotResult%10)
			return
		}
		// Eyes drop in from above, settle at 80% and hold.
		ep := (p - 0.5) / 0.5
		y := l.RestY
		if ep < 0.8 {
			y = -eyeHeight + mathx.Scale(l.RestY+eyeHeight, ep/0.8)
		}
		drawEyes(c, l, l.LeftX, l.RightX, y)
	}
}

// drawReel draws one spinning reel: 2*reelHalf+1 digits cycling modulo 10,
// one digit per period, scrolling smoothly within a period.
func drawReel(c Canvas, l Layout, x int, elapsed, periodMs int64) {
	if periodMs <= 0 || elapsed < 0 {
		return
	}
	base := int(elapsed/periodMs) % 10
	scroll := mathx.Scale(digitStride, mathx.Progress(elapsed%periodMs, periodMs))
	for i := -reelHalf; i <= reelHalf; i++ {
		y := l.CY - digitLift + i*digitStride - scroll
		drawDigit(c, l, x, y, (base+i+10)%10)
	}
}

func drawSleep(c Canvas, l Layout, f Frame) {
	switch f.Sleep {
	case SleepNormal:
		drawEyes(c, l, l.LeftX, l.RightX, l.RestY)
	case SleepClosing, SleepDimming:
		drawClosed(c, l, 0, 0, 0)
	}
}

// drawEyes fills both eye rectangles with their tops at y, skipping an eye
// that is entirely off the canvas.
func drawEyes(c Canvas, l Layout, leftX, rightX, y int) {
	fillEye(c, l, leftX, y)
	fillEye(c, l, rightX, y)
}

// fillEye hands the canvas the whole eye so an eye crossing an edge is cut
// square there; the canvas drops the pixels outside.
func fillEye(c Canvas, l Layout, x, y int) {
	if !l.rectVisible(x, y, eyeWidth, eyeHeight) {
		return
	}
	c.FillRoundRect(int16(x), int16(y), eyeWidth, eyeHeight, eyeRadius, colorEye)
}

// drawClosed draws both eyes as 3 px bands through the eye centres.
func drawClosed(c Canvas, l Layout, dxL, dxR, dy int) {
	lx0 := l.clampX(l.LeftX + dxL)
	lx1 := l.clampX(l.LeftX + dxL + eyeWidth)
	rx0 := l.clampX(l.RightX + dxR)
	rx1 := l.clampX(l.RightX + dxR + eyeWidth)
	mid := l.CY + dy
	for i := -closedHalfThickness; i <= closedHalfThickness; i++ {
		y := mid + i
		if !l.rowVisible(y) {
			continue
		}
		c.DrawLine(int16(lx0), int16(y), int16(lx1), int16(y), colorEye)
		c.DrawLine(int16(rx0), int16(y), int16(rx1), int16(y), colorEye)
	}
}

func drawDigit(c Canvas, l Layout, x, y, d int) {
	if !l.glyphVisible(y) || d < 0 || d > 9 {
		return
	}
	c.DrawText(int16(x), int16(y), digitSize, digitText[d], colorEye)
}
