// services/hal/internal/platform/platform.go

// Package platform holds the board factories. The rp2040 build drives real
// peripherals; every other build gets inert fakes for tests and the
// simulator.
package platform

import (
	"roboeyes-go/services/config"

	"tinygo.org/x/drivers"
)

// MaxPin is the highest user GPIO on RP2 boards (GP0..GP28).
const MaxPin = 28

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

type GPIOPin interface {
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	Number() int
}

// PinFactory supplies GPIO pins by GP number.
type PinFactory interface {
	ByNumber(n int) (GPIOPin, bool)
}

// Backlight sets panel brightness in 0..255.
type Backlight interface {
	SetBrightness(level uint8)
}

// PanelSize is the drawable size of p after rotation.
func PanelSize(p config.Panel) (w, h int16) {
	switch p.Rotation {
	case drivers.Rotation90, drivers.Rotation270:
		return p.Height, p.Width
	default:
		return p.Width, p.Height
	}
}

// duty maps a 0..255 level onto a PWM compare value in 0..top.
func duty(top uint32, level uint8) uint32 {
	return uint32(uint64(top) * uint64(level) / 255)
}
