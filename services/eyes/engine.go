// services/eyes/engine.go

// Package eyes is the animation core: a mode scheduler over idle gaze and
// blink, a slot-machine mini game and a sleep sequence, each driven purely
// by comparing stored deadlines with the clock on every tick.
package eyes

import (
	"roboeyes-go/errcode"
	"roboeyes-go/x/logx"
)

const logTag = "eyes"

// Engine owns the EyeState and the collaborators. It is not safe for
// concurrent use; call Tick from one loop.
type Engine struct {
	d      Deps
	layout Layout
	s      EyeState
	dirty  bool
}

// New builds the boot state with all timers relative to the current clock
// reading.
func New(d Deps) (*Engine, error) {
	if d.Clock == nil || d.Rand == nil || d.Canvas == nil || d.Backlight == nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "eyes.New", Msg: "missing dependency"}
	}
	w, h := d.Canvas.Size()
	return &Engine{
		d:      d,
		layout: NewLayout(w, h),
		s:      newEyeState(d.Clock.NowMs(), d.Rand),
	}, nil
}

// Start sets the baseline brightness, announces the idle mode and presents
// the resting eyes.
func (e *Engine) Start() error {
	now := e.d.Clock.NowMs()
	e.d.Backlight.SetBrightness(BaselineBrightness)
	e.publish(TopicMode, ModeEvent{Mode: e.s.Mode, At: now})
	return e.render(now)
}

// State returns a copy of the current animation state.
func (e *Engine) State() EyeState { return e.s }

// Tick advances every state machine to now and renders when the picture
// changed. The returned error is only a failed present; the next tick
// draws a fresh frame anyway.
func (e *Engine) Tick(now int64) error {
	s := &e.s
	if s.advanceMode(now, e.d.Backlight) {
		logx.Info(logTag, "mode", "to", s.Mode, "at", now)
		e.publish(TopicMode, ModeEvent{Mode: s.Mode, At: now})
		switch s.Mode {
		case ModeIdle:
			e.publish(TopicPhase, nil) // idle has no phase
		case ModeSlotGame:
			e.publish(TopicPhase, PhaseEvent{Mode: s.Mode, Phase: s.Slot.Phase.String(), At: now})
		}
		e.dirty = true
	}

	switch s.Mode {
	case ModeIdle:
		if s.updateBlink(now) || s.Blink.Active {
			e.dirty = true
		}
		if s.updateMotion(now, e.d.Rand) {
			e.dirty = true
		}
	case ModeSlotGame:
		if s.Slot.Update(now, e.d.Rand) {
			if s.Slot.Phase == SlotResult {
				logx.Info("slot", "phase", "to", s.Slot.Phase, "result", s.Slot.Result)
			} else {
				logx.Info("slot", "phase", "to", s.Slot.Phase)
			}
			e.publish(TopicPhase, PhaseEvent{Mode: s.Mode, Phase: s.Slot.Phase.String(), At: now, Result: s.Slot.Result})
		}
		e.dirty = true
	case ModeSleep:
		if s.Sleep.Update(now, e.d.Backlight) {
			logx.Info("sleep", "phase", "to", s.Sleep.Phase, "brightness", s.Sleep.Brightness)
			e.publish(TopicPhase, PhaseEvent{Mode: s.Mode, Phase: s.Sleep.Phase.String(), At: now, Brightness: s.Sleep.Brightness})
		}
		e.dirty = true
	}

	if !e.dirty {
		return nil
	}
	e.dirty = false
	return e.render(now)
}

func (e *Engine) render(now int64) error {
	Render(e.d.Canvas, e.layout, e.s.Frame(now))
	e.s.PrevLeft, e.s.PrevRight = e.s.Left, e.s.Right
	if err := e.d.Canvas.Present(0, 0); err != nil {
		logx.Warn(logTag, "present failed", "err", err)
		return err
	}
	return nil
}
