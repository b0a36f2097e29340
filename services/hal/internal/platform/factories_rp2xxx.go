// services/hal/internal/platform/factories_rp2xxx.go

//go:build rp2040

package platform

import (
	"io"
	"machine"

	"roboeyes-go/errcode"
	"roboeyes-go/services/config"
	"roboeyes-go/services/display"
	"roboeyes-go/x/timex"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/st7789"
)

// ---- GPIO ----

// DefaultPinFactory maps GP numbers directly to machine.Pin(n).
func DefaultPinFactory() PinFactory { return rp2PinFactory{} }

type rp2PinFactory struct{}

func (rp2PinFactory) ByNumber(n int) (GPIOPin, bool) {
	if n < 0 || n > MaxPin {
		return nil, false
	}
	return &rp2Pin{p: machine.Pin(n), n: n}, true
}

type rp2Pin struct {
	p machine.Pin
	n int
}

func (r *rp2Pin) ConfigureInput(pull Pull) error {
	var mode machine.PinMode
	switch pull {
	case PullUp:
		mode = machine.PinInputPullup
	case PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2Pin) Set(level bool) { r.p.Set(level) }
func (r *rp2Pin) Get() bool      { return r.p.Get() }

func (r *rp2Pin) Number() int { return r.n }

// ---- Panel ----

func spiByID(id string) (*machine.SPI, bool) {
	switch id {
	case "spi0":
		return machine.SPI0, true
	case "spi1":
		return machine.SPI1, true
	}
	return nil, false
}

// NewPanel brings up the ST7789 on the board's SPI bus.
func NewPanel(b config.Board) (display.Panel, error) {
	spi, ok := spiByID(b.SPI.ID)
	if !ok {
		return nil, &errcode.E{C: errcode.UnknownBus, Op: "platform.NewPanel", Msg: b.SPI.ID}
	}
	err := spi.Configure(machine.SPIConfig{
		Frequency: b.SPI.Hz,
		SCK:       machine.Pin(b.SPI.SCK),
		SDO:       machine.Pin(b.SPI.SDO),
		SDI:       machine.NoPin,
		Mode:      0,
	})
	if err != nil {
		return nil, errcode.Wrap(errcode.DisplayInit, "platform.NewPanel", err)
	}

	dev := st7789.New(spi,
		machine.Pin(b.Panel.RST),
		machine.Pin(b.Panel.DC),
		machine.Pin(b.Panel.CS),
		machine.NoPin) // backlight is on PWM
	dev.Configure(st7789.Config{
		Width:    b.Panel.Width,
		Height:   b.Panel.Height,
		Rotation: b.Panel.Rotation,
	})
	return &dev, nil
}

// ---- Backlight ----

// Local interface to avoid depending on an unexported concrete type in machine.
type pwmCtrl interface {
	Configure(cfg machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// Select controller handle for a given slice number (0..7).
func pwmGroupBySlice(slice uint8) pwmCtrl {
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}

type pwmBacklight struct {
	ctrl pwmCtrl
	ch   uint8
	top  uint32
}

// NewBacklight configures the backlight pin's PWM slice.
func NewBacklight(b config.Board) (Backlight, error) {
	pin := machine.Pin(b.Backlight.Pin)
	slice, err := machine.PWMPeripheral(pin)
	if err != nil {
		return nil, errcode.Wrap(errcode.Unsupported, "platform.NewBacklight", err)
	}
	ctrl := pwmGroupBySlice(slice)
	if err := ctrl.Configure(machine.PWMConfig{Period: timex.PeriodFromHz(b.Backlight.PWMHz)}); err != nil {
		return nil, errcode.Wrap(errcode.Error, "platform.NewBacklight", err)
	}
	ch, err := ctrl.Channel(pin)
	if err != nil {
		return nil, errcode.Wrap(errcode.Error, "platform.NewBacklight", err)
	}
	bl := &pwmBacklight{ctrl: ctrl, ch: ch, top: ctrl.Top()}
	bl.SetBrightness(0)
	return bl, nil
}

func (p *pwmBacklight) SetBrightness(level uint8) { p.ctrl.Set(p.ch, duty(p.top, level)) }

// ---- Console ----

// OpenConsole configures the log UART. An empty name keeps USB CDC.
func OpenConsole(c config.Console) (io.Writer, error) {
	var hw *uartx.UART
	switch c.UART {
	case "":
		return nil, nil
	case "uart0":
		hw = uartx.UART0
	case "uart1":
		hw = uartx.UART1
	default:
		return nil, &errcode.E{C: errcode.UnknownBus, Op: "platform.OpenConsole", Msg: c.UART}
	}
	// Defaults inside uartx apply if zero.
	if err := hw.Configure(uartx.UARTConfig{
		BaudRate: c.Baud,
		TX:       machine.Pin(c.TX),
		RX:       machine.Pin(c.RX),
	}); err != nil {
		return nil, errcode.Wrap(errcode.Error, "platform.OpenConsole", err)
	}
	return hw, nil
}
