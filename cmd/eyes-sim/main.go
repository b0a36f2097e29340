// cmd/eyes-sim/main.go

// Command eyes-sim runs the eyes against a simulated clock on the host
// board and prints the frames as ASCII art.
package main

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"roboeyes-go/bus"
	"roboeyes-go/services/config"
	"roboeyes-go/services/display"
	"roboeyes-go/services/eyes"
	"roboeyes-go/services/hal"
	"roboeyes-go/services/lamps"
	"roboeyes-go/x/logx"
	"roboeyes-go/x/timex"
)

type pixeler interface {
	Size() (int16, int16)
	Pixel(x, y int16) bool
}

// settable is met by the host fake pins.
type settable interface{ Set(level bool) }

func main() {
	boardName := flag.String("board", config.DefaultBoard, "board profile")
	duration := flag.Int64("ms", 30_000, "simulated run time in ms")
	step := flag.Int64("step", 16, "tick period in ms")
	every := flag.Int64("every", 1000, "print a frame every n ms (0 = never)")
	cell := flag.Int("cell", 8, "pixels per character")
	seed := flag.Int64("seed", 1, "random seed")
	hold := flag.String("hold", "", "comma separated touches held throughout: indicator,brake,head")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	if *debug {
		logx.SetLevel(logx.LevelDebug)
	}
	if *step <= 0 || *cell <= 0 {
		logx.Error("sim", "step and cell must be positive")
		os.Exit(2)
	}

	cfg, err := config.Lookup(*boardName)
	if err != nil {
		logx.Error("sim", "config", "err", err)
		os.Exit(1)
	}
	bd, err := hal.Open(cfg)
	if err != nil {
		logx.Error("sim", "hal", "err", err)
		os.Exit(1)
	}
	if err := holdTouches(bd.Lamps, *hold); err != nil {
		logx.Error("sim", "hold", "err", err)
		os.Exit(2)
	}

	defer bd.Close()

	b := bus.NewBus(16)
	w := newWatcher(b.NewConnection("sim"))

	clk := &timex.Manual{}
	canvas := display.NewForPanel(bd.Panel, display.White)
	eng, err := eyes.New(eyes.Deps{
		Clock:     clk,
		Rand:      eyes.NewMathRand(*seed),
		Canvas:    canvas,
		Backlight: bd.Backlight,
		Conn:      b.NewConnection("eyes"),
	})
	if err != nil {
		logx.Error("sim", "eyes", "err", err)
		os.Exit(1)
	}
	refl, err := lamps.New(bd.Lamps, b.NewConnection("lamps"))
	if err != nil {
		logx.Error("sim", "lamps", "err", err)
		os.Exit(1)
	}
	if err := eng.Start(); err != nil {
		logx.Warn("sim", "initial frame", "err", err)
	}

	nextFrame := int64(0)
	for now := int64(0); now <= *duration; now += *step {
		clk.Set(now)
		_ = eng.Tick(now)
		refl.Update(now)
		w.drain(now)

		if *every > 0 && now >= nextFrame {
			os.Stdout.WriteString("t=" + strconv.FormatInt(now, 10) + " mode=" + w.mode.String() + "\n")
			os.Stdout.WriteString(thumbnail(canvas, int16(*cell)))
			nextFrame = now + *every
		}
	}
}

// watcher follows the eyes and lamps topics without blocking the loop.
type watcher struct {
	sub   *bus.Subscription
	mode  eyes.Mode
	lamps lamps.State
}

func newWatcher(c *bus.Connection) *watcher {
	return &watcher{sub: c.Subscribe(bus.T(bus.MultiLevel))}
}

// drain consumes every queued message.
func (w *watcher) drain(now int64) {
	for m, ok := w.sub.TryRecv(); ok; m, ok = w.sub.TryRecv() {
		switch ev := m.Payload.(type) {
		case eyes.ModeEvent:
			w.mode = ev.Mode
			logx.Debug("sim", "mode", "t", ev.At, "mode", ev.Mode.String())
		case eyes.PhaseEvent:
			logx.Debug("sim", "phase", "t", ev.At, "mode", ev.Mode.String(), "phase", ev.Phase)
		case lamps.State:
			if ev != w.lamps {
				logx.Info("sim", "lamps", "t", now, "indicators", ev.Indicators, "brake", ev.Brake, "head", ev.Head)
				w.lamps = ev
			}
		}
	}
}

func holdTouches(p lamps.Pins, list string) error {
	if list == "" {
		return nil
	}
	for _, name := range strings.Split(list, ",") {
		var t lamps.Touch
		switch strings.TrimSpace(name) {
		case "indicator":
			t = p.IndicatorTouch
		case "brake":
			t = p.BrakeTouch
		case "head":
			t = p.HeadTouch
		default:
			return &unknownTouch{name}
		}
		s, ok := t.Pin.(settable)
		if !ok {
			return &unknownTouch{name + " (pin not settable)"}
		}
		s.Set(!t.Invert)
	}
	return nil
}

type unknownTouch struct{ name string }

func (e *unknownTouch) Error() string { return "unknown touch " + strconv.Quote(e.name) }

// thumbnail samples one pixel per cell horizontally and per two cells
// vertically, since terminal characters are about twice as tall as wide.
func thumbnail(c pixeler, cell int16) string {
	w, h := c.Size()
	var sb strings.Builder
	for y := cell; y < h; y += 2 * cell {
		for x := cell / 2; x < w; x += cell {
			if c.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
