// services/hal/internal/platform/factories_host.go

//go:build !rp2040

package platform

import (
	"io"
	"sync"

	"roboeyes-go/errcode"
	"roboeyes-go/services/config"
	"roboeyes-go/services/display"
)

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements GPIOPin for host-side tests.
type FakePin struct {
	mu      sync.RWMutex
	number  int
	level   bool
	modeOut bool
	pull    Pull
}

func (p *FakePin) ConfigureInput(pull Pull) error {
	p.mu.Lock()
	p.modeOut = false
	p.pull = pull
	p.level = pull == PullUp
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.modeOut = true
	p.level = initial
	p.mu.Unlock()
	return nil
}

// Set drives an output, or stands in for the outside world on an input.
func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	v := p.level
	p.mu.RUnlock()
	return v
}

func (p *FakePin) Number() int { return p.number }

// Output reports whether the pin was configured as an output.
func (p *FakePin) Output() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modeOut
}

// HostPinFactory returns stable *FakePin instances per number.
type HostPinFactory struct {
	mu   sync.Mutex
	pins map[int]*FakePin
}

func (f *HostPinFactory) ByNumber(n int) (GPIOPin, bool) {
	if n < 0 || n > MaxPin {
		return nil, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pins == nil {
		f.pins = make(map[int]*FakePin)
	}
	p, ok := f.pins[n]
	if !ok {
		p = &FakePin{number: n}
		f.pins[n] = p
	}
	return p, true
}

// Get exposes the underlying *FakePin for tests.
func (f *HostPinFactory) Get(n int) (*FakePin, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pins[n]
	return p, ok
}

// DefaultPinFactory provides a host GPIO factory.
func DefaultPinFactory() PinFactory {
	return &HostPinFactory{pins: make(map[int]*FakePin)}
}

// ----------------------------- Panel (host) ----------------------------------

// FakePanel keeps the last presented picture as RGB565 words.
type FakePanel struct {
	W, H  int16
	Frame []uint16
	Bands int
	Err   error
}

func NewFakePanel(w, h int16) *FakePanel {
	return &FakePanel{W: w, H: h, Frame: make([]uint16, int(w)*int(h))}
}

func (p *FakePanel) Size() (int16, int16) { return p.W, p.H }

func (p *FakePanel) DrawRGBBitmap8(x, y int16, data []uint8, w, h int16) error {
	if p.Err != nil {
		return p.Err
	}
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > p.W || y+h > p.H || len(data) < int(w)*int(h)*2 {
		return errcode.InvalidParams
	}
	i := 0
	for row := int(y); row < int(y+h); row++ {
		for col := int(x); col < int(x+w); col++ {
			p.Frame[row*int(p.W)+col] = uint16(data[i])<<8 | uint16(data[i+1])
			i += 2
		}
	}
	p.Bands++
	return nil
}

// Lit reports whether the pixel at x,y is not black.
func (p *FakePanel) Lit(x, y int16) bool {
	if x < 0 || y < 0 || x >= p.W || y >= p.H {
		return false
	}
	return p.Frame[int(y)*int(p.W)+int(x)] != 0
}

// NewPanel returns a FakePanel of the rotated panel size.
func NewPanel(b config.Board) (display.Panel, error) {
	w, h := PanelSize(b.Panel)
	if w <= 0 || h <= 0 {
		return nil, &errcode.E{C: errcode.DisplayInit, Op: "platform.NewPanel", Msg: "empty panel"}
	}
	return NewFakePanel(w, h), nil
}

// --------------------------- Backlight (host) --------------------------------

const fakePWMTop = 0xffff

// FakeBacklight records the level and the duty it would program.
type FakeBacklight struct {
	mu    sync.Mutex
	Level uint8
	Duty  uint32
	Sets  int
}

func (b *FakeBacklight) SetBrightness(level uint8) {
	b.mu.Lock()
	b.Level = level
	b.Duty = duty(fakePWMTop, level)
	b.Sets++
	b.mu.Unlock()
}

func NewBacklight(b config.Board) (Backlight, error) {
	if b.Backlight.Pin < 0 || b.Backlight.Pin > MaxPin {
		return nil, errcode.UnknownPin
	}
	return &FakeBacklight{}, nil
}

// ----------------------------- Console (host) --------------------------------

// OpenConsole has no UART on the host; logs stay on stdout.
func OpenConsole(c config.Console) (io.Writer, error) {
	switch c.UART {
	case "", "uart0", "uart1":
		return nil, nil
	default:
		return nil, &errcode.E{C: errcode.UnknownBus, Op: "platform.OpenConsole", Msg: c.UART}
	}
}
