// services/eyes/layout.go

package eyes

import "roboeyes-go/x/mathx"

// Eye and glyph geometry in pixels.
const (
	eyeSpacing = 190 // between eye centres
	eyeWidth   = 60
	eyeHeight  = 120
	eyeRadius  = 5

	closedHalfThickness = 1 // closed eyes are a 3 px band

	digitSize   = 10
	digitHeight = 8 * digitSize
	digitStride = 80 // vertical distance between reel digits

	digitLift     = 35   // digit top sits this far above the screen centre
	digitInset    = 30   // digit left edge sits this far left of the eye centre
	introInset    = 25   // same, while the digits stream in
	introDigitTop = -300 // first intro digit's top at progress 0
	introDigits   = 4
	reelHalf      = 2 // reel shows 2*reelHalf+1 digits

	leftReelPeriodMs  = 200
	rightReelPeriodMs = 150
)

// Layout holds the anchors derived from the canvas size.
type Layout struct {
	W, H   int
	CX, CY int

	LeftCX, RightCX int // horizontal eye centres
	LeftX, RightX   int // resting eye left edges
	RestY           int // resting eye top edge
}

func NewLayout(w, h int16) Layout {
	l := Layout{
		W: int(mathx.Max(w, 1)),
		H: int(mathx.Max(h, 1)),
	}
	l.CX, l.CY = l.W/2, l.H/2
	l.LeftCX = l.CX - eyeSpacing/2
	l.RightCX = l.CX + eyeSpacing/2
	l.LeftX = l.LeftCX - eyeWidth/2
	l.RightX = l.RightCX - eyeWidth/2
	l.RestY = l.CY - eyeHeight/2
	return l
}

// rectVisible reports whether any of a rectangle lies on the canvas. A
// visible rectangle's corners stay within int16 since the canvas does.
func (l Layout) rectVisible(x, y, w, h int) bool {
	return x < l.W && y < l.H && x+w > 0 && y+h > 0
}

func (l Layout) clampX(x int) int { return mathx.Clamp(x, 0, l.W-1) }

func (l Layout) rowVisible(y int) bool { return y >= 0 && y < l.H }

// glyphVisible reports whether a digit cell with its top at y shows at all.
func (l Layout) glyphVisible(y int) bool { return y > -digitHeight && y < l.H }
