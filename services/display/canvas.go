// services/display/canvas.go

// Package display holds the offscreen canvas the eyes are drawn into.
//
// The canvas keeps one bit per pixel (the eyes are monochrome) and is
// allocated once. Present expands it band by band into RGB565 and hands the
// bands to the panel, so a frame never becomes visible half drawn.
package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"roboeyes-go/x/mathx"
)

// Panel is the physical screen a canvas is blitted to.
// st7789.Device satisfies it.
type Panel interface {
	Size() (w, h int16)
	DrawRGBBitmap8(x, y int16, data []uint8, w, h int16) error
}

// bandRows is the number of rows sent to the panel per transfer.
const bandRows = 8

// glyphBaseline is the baseline of the unscaled proggy font inside its cell.
const glyphBaseline = 7

var (
	Black = color.RGBA{A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

var _ drivers.Displayer = (*Canvas)(nil)

type Canvas struct {
	w, h   int16
	stride int
	bits   []uint8

	fg, bg [2]uint8 // RGB565 big-endian
	band   []uint8

	panel Panel
	font  tinyfont.Fonter
}

// New allocates a canvas of w×h pixels presented on p with foreground fg.
func New(p Panel, w, h int16, fg color.RGBA) *Canvas {
	w = mathx.Max(w, 1)
	h = mathx.Max(h, 1)
	stride := (int(w) + 7) / 8
	return &Canvas{
		w:      w,
		h:      h,
		stride: stride,
		bits:   make([]uint8, stride*int(h)),
		fg:     rgb565(fg),
		bg:     rgb565(Black),
		band:   make([]uint8, int(w)*2*bandRows),
		panel:  p,
		font:   &proggy.TinySZ8pt7b,
	}
}

// NewForPanel sizes the canvas to the panel.
func NewForPanel(p Panel, fg color.RGBA) *Canvas {
	w, h := p.Size()
	return New(p, w, h, fg)
}

func (c *Canvas) Size() (int16, int16) { return c.w, c.h }

// SetPixel lights (non-black colour) or clears one pixel. Out-of-range
// coordinates are ignored.
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	i := int(y)*c.stride + int(x)/8
	m := uint8(0x80) >> (uint(x) & 7)
	if lit(col) {
		c.bits[i] |= m
	} else {
		c.bits[i] &^= m
	}
}

// Pixel reports whether (x, y) is lit.
func (c *Canvas) Pixel(x, y int16) bool {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return false
	}
	return c.bits[int(y)*c.stride+int(x)/8]&(uint8(0x80)>>(uint(x)&7)) != 0
}

// Display presents the canvas at the panel origin.
func (c *Canvas) Display() error { return c.Present(0, 0) }

func (c *Canvas) Clear(col color.RGBA) {
	var v uint8
	if lit(col) {
		v = 0xff
	}
	for i := range c.bits {
		c.bits[i] = v
	}
}

// FillRoundRect fills a rectangle whose corners are quarter circles of
// radius r. r is limited to half the shorter side.
func (c *Canvas) FillRoundRect(x, y, w, h, r int16, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	r = mathx.Clamp(r, 0, mathx.Min(w, h)/2)
	if r == 0 {
		tinydraw.FilledRectangle(c, x, y, w, h, col)
		return
	}
	tinydraw.FilledRectangle(c, x+r, y, w-2*r, h, col)
	if h > 2*r {
		tinydraw.FilledRectangle(c, x, y+r, r, h-2*r, col)
		tinydraw.FilledRectangle(c, x+w-r, y+r, r, h-2*r, col)
	}
	tinydraw.FilledCircle(c, x+r, y+r, r, col)
	tinydraw.FilledCircle(c, x+w-r-1, y+r, r, col)
	tinydraw.FilledCircle(c, x+r, y+h-r-1, r, col)
	tinydraw.FilledCircle(c, x+w-r-1, y+h-r-1, r, col)
}

func (c *Canvas) FillCircle(x, y, r int16, col color.RGBA) {
	if r < 0 {
		return
	}
	tinydraw.FilledCircle(c, x, y, r, col)
}

func (c *Canvas) DrawLine(x0, y0, x1, y1 int16, col color.RGBA) {
	tinydraw.Line(c, x0, y0, x1, y1, col)
}

// DrawText writes text with its cell's top-left corner at (x, y), every
// font pixel scaled to a size×size block. Parts outside the canvas are
// dropped.
func (c *Canvas) DrawText(x, y, size int16, text string, col color.RGBA) {
	size = mathx.Max(size, 1)
	s := scaled{c: c, ox: x, oy: y, s: size}
	tinyfont.WriteLine(s, c.font, 0, glyphBaseline, text, col)
}

// Present blits the whole canvas with its top-left corner at (x, y) on the
// panel.
func (c *Canvas) Present(x, y int16) error {
	for row := int16(0); row < c.h; row += bandRows {
		n := mathx.Min(bandRows, c.h-row)
		c.expand(row, n)
		if err := c.panel.DrawRGBBitmap8(x, y+row, c.band[:int(c.w)*2*int(n)], c.w, n); err != nil {
			return err
		}
	}
	return nil
}

func (c *Canvas) expand(row, n int16) {
	o := 0
	for yy := row; yy < row+n; yy++ {
		base := int(yy) * c.stride
		for xx := 0; xx < int(c.w); xx++ {
			px := c.bg
			if c.bits[base+xx/8]&(uint8(0x80)>>(uint(xx)&7)) != 0 {
				px = c.fg
			}
			c.band[o] = px[0]
			c.band[o+1] = px[1]
			o += 2
		}
	}
}

func lit(c color.RGBA) bool { return c.R|c.G|c.B != 0 }

func rgb565(c color.RGBA) [2]uint8 {
	v := uint16(c.R&0xf8)<<8 | uint16(c.G&0xfc)<<3 | uint16(c.B)>>3
	return [2]uint8{uint8(v >> 8), uint8(v)}
}

// scaled maps font pixels onto size×size blocks of the canvas.
type scaled struct {
	c      *Canvas
	ox, oy int16
	s      int16
}

func (d scaled) Size() (int16, int16) {
	return d.c.w/d.s + 1, d.c.h/d.s + 1
}

func (d scaled) SetPixel(x, y int16, col color.RGBA) {
	bx := d.ox + x*d.s
	by := d.oy + y*d.s
	for j := int16(0); j < d.s; j++ {
		for i := int16(0); i < d.s; i++ {
			d.c.SetPixel(bx+i, by+j, col)
		}
	}
}

func (d scaled) Display() error { return nil }
