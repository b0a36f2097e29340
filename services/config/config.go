// services/config/config.go

package config

import (
	"roboeyes-go/errcode"

	"tinygo.org/x/drivers"
)

// DefaultBoard is used when no board name is given.
const DefaultBoard = "pico_st7789"

// NoPin marks an optional line that is not wired.
const NoPin = -1

// SPI is the display bus.
type SPI struct {
	ID       string // "spi0" or "spi1"
	SCK, SDO int
	Hz       uint32
}

// Panel describes the display controller lines and orientation.
type Panel struct {
	Width, Height int16 // native, before rotation
	Rotation      drivers.Rotation
	CS, DC, RST   int
}

// Backlight is the PWM-driven panel backlight.
type Backlight struct {
	Pin   int
	PWMHz uint32
}

// Lamps holds the touch inputs and lamp outputs of the reflector.
type Lamps struct {
	Touch1, Touch2, Touch3 int // indicator, brake, head
	IndicatorR, IndicatorL int
	Head, Brake            int
	// ActiveLow lamps are lit by driving the line LOW.
	BrakeActiveLow, HeadActiveLow bool
}

// Console is an optional log UART. An empty UART keeps logs on USB.
type Console struct {
	UART   string
	TX, RX int
	Baud   uint32
}

// Board is one hardware profile.
type Board struct {
	Name      string
	SPI       SPI
	Panel     Panel
	Backlight Backlight
	Lamps     Lamps
	Console   Console
}

// NamedPin is a pin number with the function it is wired to.
type NamedPin struct {
	Name string
	N    int
}

// EmbeddedBoardLookup resolves a profile by name. Tests may override it.
var EmbeddedBoardLookup = func(name string) (Board, bool) {
	b, ok := embeddedBoards[name]
	return b, ok
}

// Lookup returns the named profile, or DefaultBoard for an empty name.
func Lookup(name string) (Board, error) {
	if name == "" {
		name = DefaultBoard
	}
	b, ok := EmbeddedBoardLookup(name)
	if !ok {
		return Board{}, &errcode.E{C: errcode.UnknownBoard, Op: "config.Lookup", Msg: name}
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Names lists the embedded profiles.
func Names() []string {
	out := make([]string, 0, len(embeddedBoards))
	for n := range embeddedBoards {
		out = append(out, n)
	}
	return out
}

// Pins lists every wired pin of the board.
func (b Board) Pins() []NamedPin {
	ps := []NamedPin{
		{"spi_sck", b.SPI.SCK},
		{"spi_sdo", b.SPI.SDO},
		{"panel_cs", b.Panel.CS},
		{"panel_dc", b.Panel.DC},
		{"panel_rst", b.Panel.RST},
		{"backlight", b.Backlight.Pin},
		{"touch1", b.Lamps.Touch1},
		{"touch2", b.Lamps.Touch2},
		{"touch3", b.Lamps.Touch3},
		{"indicator_r", b.Lamps.IndicatorR},
		{"indicator_l", b.Lamps.IndicatorL},
		{"head", b.Lamps.Head},
		{"brake", b.Lamps.Brake},
	}
	if b.Console.UART != "" {
		ps = append(ps, NamedPin{"console_tx", b.Console.TX}, NamedPin{"console_rx", b.Console.RX})
	}
	return ps
}

// Validate rejects negative or shared pins and an unusable panel.
func (b Board) Validate() error {
	if b.Panel.Width <= 0 || b.Panel.Height <= 0 {
		return &errcode.E{C: errcode.InvalidParams, Op: "config.Validate", Msg: b.Name + ": panel size"}
	}
	if b.Backlight.PWMHz == 0 || b.SPI.Hz == 0 {
		return &errcode.E{C: errcode.InvalidParams, Op: "config.Validate", Msg: b.Name + ": zero frequency"}
	}
	seen := make(map[int]string, 16)
	for _, p := range b.Pins() {
		if p.N < 0 {
			return &errcode.E{C: errcode.InvalidParams, Op: "config.Validate", Msg: b.Name + ": " + p.Name}
		}
		if other, dup := seen[p.N]; dup {
			return &errcode.E{C: errcode.PinInUse, Op: "config.Validate", Msg: b.Name + ": " + p.Name + " and " + other}
		}
		seen[p.N] = p.Name
	}
	return nil
}
