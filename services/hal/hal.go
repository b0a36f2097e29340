// services/hal/hal.go

// Package hal brings the board up from a config profile: it claims every
// wired pin, opens the panel and backlight, redirects logging to the
// console UART and hands the pieces to the application.
package hal

import (
	"roboeyes-go/errcode"
	"roboeyes-go/services/config"
	"roboeyes-go/services/display"
	"roboeyes-go/services/hal/internal/platform"
	"roboeyes-go/services/lamps"
	"roboeyes-go/x/logx"
	"roboeyes-go/x/timex"
)

const logTag = "hal"

// Board is an opened board.
type Board struct {
	Config    config.Board
	Panel     display.Panel
	Backlight platform.Backlight
	Lamps     lamps.Pins
	Clock     *timex.Clock

	reg *Registry
}

// Open brings up b with the platform's default pin factory.
func Open(b config.Board) (*Board, error) {
	return OpenWith(b, platform.DefaultPinFactory())
}

// OpenWith brings up b using pins from f. A failed open releases the
// pins it claimed.
func OpenWith(b config.Board, f platform.PinFactory) (bd *Board, err error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	w, err := platform.OpenConsole(b.Console)
	if err != nil {
		return nil, err
	}
	if w != nil {
		logx.SetOutput(w)
		logx.Info(logTag, "console", "uart", b.Console.UART, "baud", b.Console.Baud)
	}

	reg := NewRegistry(f)
	defer func() {
		if err != nil {
			releaseAll(reg, b)
		}
	}()
	// Panel and backlight pins are driven by their peripherals; claiming
	// them here only reserves them.
	for _, p := range b.Pins() {
		if _, err := reg.ClaimPin(p.Name, p.N); err != nil {
			return nil, err
		}
	}

	lp, err := openLamps(reg, b.Lamps)
	if err != nil {
		return nil, err
	}

	panel, err := platform.NewPanel(b)
	if err != nil {
		return nil, errcode.Wrap(errcode.DisplayInit, "hal.Open", err)
	}
	bl, err := platform.NewBacklight(b)
	if err != nil {
		return nil, err
	}

	pw, ph := panel.Size()
	logx.Info(logTag, "board up", "name", b.Name, "w", pw, "h", ph)
	return &Board{
		Config:    b,
		Panel:     panel,
		Backlight: bl,
		Lamps:     lp,
		Clock:     timex.NewClock(),
		reg:       reg,
	}, nil
}

// Registry exposes the pin registry.
func (bd *Board) Registry() *Registry { return bd.reg }

// Close drops every pin claim. The lines go back to plain inputs, so the
// lamps go dark.
func (bd *Board) Close() {
	releaseAll(bd.reg, bd.Config)
	logx.Info(logTag, "board closed", "name", bd.Config.Name)
}

func releaseAll(reg *Registry, b config.Board) {
	for _, p := range b.Pins() {
		reg.ReleasePin(p.Name, p.N)
	}
}

func openLamps(reg *Registry, l config.Lamps) (lamps.Pins, error) {
	in := func(name string, n int) (lamps.Touch, error) {
		p, err := reg.ClaimPin(name, n)
		if err != nil {
			return lamps.Touch{}, err
		}
		// Touch modules drive the line actively; the pull-down only keeps
		// an unplugged sensor from floating.
		if err := p.ConfigureInput(platform.PullDown); err != nil {
			return lamps.Touch{}, errcode.Wrap(errcode.Error, "hal.openLamps", err)
		}
		return lamps.Touch{Pin: p}, nil
	}
	out := func(name string, n int, activeLow bool) (lamps.Lamp, error) {
		p, err := reg.ClaimPin(name, n)
		if err != nil {
			return lamps.Lamp{}, err
		}
		return lamps.Lamp{Pin: p, ActiveLow: activeLow}, nil
	}

	var (
		lp  lamps.Pins
		err error
	)
	if lp.IndicatorTouch, err = in("touch1", l.Touch1); err != nil {
		return lp, err
	}
	if lp.BrakeTouch, err = in("touch2", l.Touch2); err != nil {
		return lp, err
	}
	if lp.HeadTouch, err = in("touch3", l.Touch3); err != nil {
		return lp, err
	}
	if lp.IndicatorR, err = out("indicator_r", l.IndicatorR, false); err != nil {
		return lp, err
	}
	if lp.IndicatorL, err = out("indicator_l", l.IndicatorL, false); err != nil {
		return lp, err
	}
	if lp.Head, err = out("head", l.Head, l.HeadActiveLow); err != nil {
		return lp, err
	}
	if lp.Brake, err = out("brake", l.Brake, l.BrakeActiveLow); err != nil {
		return lp, err
	}
	return lp, nil
}
