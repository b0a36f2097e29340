// services/eyes/fakes_test.go

package eyes

import (
	"image/color"
	"testing"

	"roboeyes-go/x/mathx"
	"roboeyes-go/x/timex"
)

// scriptRand replays vals (clamped into the requested range), then
// repeats the last one.
type scriptRand struct {
	vals []int
	i    int
}

func (r *scriptRand) IntRange(lo, hi int) int {
	if len(r.vals) == 0 {
		return lo
	}
	v := r.vals[mathx.Min(r.i, len(r.vals)-1)]
	r.i++
	return mathx.Clamp(v, lo, hi)
}

type op struct {
	kind          string
	x, y, w, h, r int16
	x1, y1, size  int16
	text          string
}

// recCanvas keeps the primitives of the frame being drawn and, with t
// set, fails on a rectangle entirely off the canvas or a line that leaves
// it.
type recCanvas struct {
	t        *testing.T
	w, h     int16
	ops      []op
	presents int
	err      error
}

func newRecCanvas(t *testing.T) *recCanvas { return &recCanvas{t: t, w: 320, h: 240} }

func (c *recCanvas) Size() (int16, int16) { return c.w, c.h }

func (c *recCanvas) Clear(color.RGBA) { c.ops = c.ops[:0] }

func (c *recCanvas) FillRoundRect(x, y, w, h, r int16, _ color.RGBA) {
	if c.t != nil && (w <= 0 || h <= 0 || x >= c.w || y >= c.h || x+w <= 0 || y+h <= 0) {
		c.t.Fatalf("rect out of bounds: x=%d y=%d w=%d h=%d", x, y, w, h)
	}
	c.ops = append(c.ops, op{kind: "rect", x: x, y: y, w: w, h: h, r: r})
}

func (c *recCanvas) FillCircle(x, y, r int16, _ color.RGBA) {
	c.ops = append(c.ops, op{kind: "circle", x: x, y: y, r: r})
}

func (c *recCanvas) DrawLine(x0, y0, x1, y1 int16, _ color.RGBA) {
	if c.t != nil {
		for _, p := range [][2]int16{{x0, y0}, {x1, y1}} {
			if p[0] < 0 || p[1] < 0 || p[0] >= c.w || p[1] >= c.h {
				c.t.Fatalf("line endpoint out of bounds: %v", p)
			}
		}
	}
	c.ops = append(c.ops, op{kind: "line", x: x0, y: y0, x1: x1, y1: y1})
}

func (c *recCanvas) DrawText(x, y, size int16, text string, _ color.RGBA) {
	if c.t != nil && (y <= -digitHeight || y >= c.h) {
		c.t.Fatalf("glyph entirely off canvas at y=%d", y)
	}
	c.ops = append(c.ops, op{kind: "text", x: x, y: y, size: size, text: text})
}

func (c *recCanvas) Present(int16, int16) error {
	c.presents++
	return c.err
}

func (c *recCanvas) count(kind string) int {
	n := 0
	for _, o := range c.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

type recBacklight struct {
	levels []uint8
}

func (b *recBacklight) SetBrightness(l uint8) { b.levels = append(b.levels, l) }

func (b *recBacklight) last() (uint8, bool) {
	if len(b.levels) == 0 {
		return 0, false
	}
	return b.levels[len(b.levels)-1], true
}

type rig struct {
	clk     *timex.Manual
	started bool
	cv      *recCanvas
	bl      *recBacklight
	eng     *Engine
}

func newRig(t *testing.T, rnd Rand) *rig {
	t.Helper()
	r := &rig{clk: &timex.Manual{}, cv: newRecCanvas(t), bl: &recBacklight{}}
	eng, err := New(Deps{Clock: r.clk, Rand: rnd, Canvas: r.cv, Backlight: r.bl})
	if err != nil {
		t.Fatal(err)
	}
	r.eng = eng
	return r
}

// tickTo ticks every step ms up to and including end. A rig that has
// ticked before resumes one step after its last tick, so no timestamp is
// ticked twice.
func (r *rig) tickTo(t *testing.T, end, step int64) {
	t.Helper()
	now := r.clk.NowMs()
	if r.started {
		now += step
	}
	r.started = true
	for ; now <= end; now += step {
		r.clk.Set(now)
		if err := r.eng.Tick(now); err != nil {
			t.Fatalf("tick %d: %v", now, err)
		}
	}
}
