// services/lamps/lamps.go

// Package lamps mirrors the three touch inputs onto the vehicle lamps:
// touch 1 flashes both turn indicators, touch 2 lights the brake lamp and
// touch 3 the head lamp.
package lamps

import (
	"roboeyes-go/bus"
	"roboeyes-go/errcode"
)

// TopicState carries the retained State after every change.
var TopicState = bus.T("lamps", "state")

// IndicatorPeriodMs is the time between indicator toggles while touch 1
// is held.
const IndicatorPeriodMs = 500

// Input is a digital input line.
type Input interface {
	Get() bool
}

// Output is a digital output line.
type Output interface {
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
}

// Touch is a touch sensor line. Invert flips a sensor that pulls low when
// touched.
type Touch struct {
	Pin    Input
	Invert bool
}

// Held reports whether the sensor is touched.
func (t Touch) Held() bool { return t.Pin.Get() != t.Invert }

// Lamp is an output line with its polarity. An active-low lamp is lit by
// driving the line LOW and idles HIGH.
type Lamp struct {
	Pin       Output
	ActiveLow bool
}

func (l Lamp) init() error { return l.Pin.ConfigureOutput(l.level(false)) }

func (l Lamp) set(on bool) { l.Pin.Set(l.level(on)) }

// On reads the logical lamp state back from the line.
func (l Lamp) On() bool { return l.Pin.Get() != l.ActiveLow }

func (l Lamp) level(on bool) bool { return on != l.ActiveLow }

// Pins wires the reflector.
type Pins struct {
	IndicatorTouch Touch
	BrakeTouch     Touch
	HeadTouch      Touch

	IndicatorL Lamp
	IndicatorR Lamp
	Brake      Lamp
	Head       Lamp
}

// State is a snapshot of the logical lamp outputs.
type State struct {
	Indicators bool
	Brake      bool
	Head       bool
}

// Reflector polls the touch inputs and drives the lamps. Call Update from
// the main loop; it never blocks.
type Reflector struct {
	p    Pins
	conn *bus.Connection

	indicators bool
	lastToggle int64
	st         State
}

// New configures every lamp output in its off state: indicators LOW,
// brake and head lamps at their idle level. conn may be nil.
func New(p Pins, conn *bus.Connection) (*Reflector, error) {
	for _, t := range []Touch{p.IndicatorTouch, p.BrakeTouch, p.HeadTouch} {
		if t.Pin == nil {
			return nil, &errcode.E{C: errcode.InvalidParams, Op: "lamps.New", Msg: "missing touch input"}
		}
	}
	for _, l := range []Lamp{p.IndicatorL, p.IndicatorR, p.Brake, p.Head} {
		if l.Pin == nil {
			return nil, &errcode.E{C: errcode.InvalidParams, Op: "lamps.New", Msg: "missing lamp output"}
		}
		if err := l.init(); err != nil {
			return nil, errcode.Wrap(errcode.Error, "lamps.New", err)
		}
	}
	r := &Reflector{p: p, conn: conn}
	r.publish()
	return r, nil
}

// Update samples the inputs at now and refreshes the outputs.
func (r *Reflector) Update(now int64) {
	if r.p.IndicatorTouch.Held() {
		if now-r.lastToggle >= IndicatorPeriodMs {
			r.setIndicators(!r.indicators)
			r.lastToggle = now
		}
	} else if r.indicators {
		r.setIndicators(false)
	}

	brake := r.p.BrakeTouch.Held()
	head := r.p.HeadTouch.Held()
	r.p.Brake.set(brake)
	r.p.Head.set(head)

	st := State{Indicators: r.indicators, Brake: brake, Head: head}
	if st != r.st {
		r.st = st
		r.publish()
	}
}

// State returns the logical outputs after the last Update.
func (r *Reflector) State() State { return r.st }

func (r *Reflector) publish() {
	if r.conn != nil {
		r.conn.PublishRetained(TopicState, r.st)
	}
}

func (r *Reflector) setIndicators(on bool) {
	r.indicators = on
	r.p.IndicatorL.set(on)
	r.p.IndicatorR.set(on)
}
