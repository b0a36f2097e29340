// main.go

package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"

	"roboeyes-go/bus"
	"roboeyes-go/services/config"
	"roboeyes-go/services/display"
	"roboeyes-go/services/eyes"
	"roboeyes-go/services/hal"
	"roboeyes-go/services/lamps"
	"roboeyes-go/x/logx"
)

// About 60 frames per second, counted after each tick's work.
const frameDelay = 16 * time.Millisecond

// board selects the profile: -ldflags "-X main.board=pico_st7789_usb".
var board = config.DefaultBoard

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	cfg, err := config.Lookup(board)
	if err != nil {
		halt("config", err)
	}
	bd, err := hal.Open(cfg)
	if err != nil {
		halt("hal", err)
	}

	b := bus.NewBus(8)
	events := b.NewConnection("main").Subscribe(eyes.TopicMode)

	canvas := display.NewForPanel(bd.Panel, display.White)
	eng, err := eyes.New(eyes.Deps{
		Clock:     bd.Clock,
		Rand:      eyes.NewMathRand(seed()),
		Canvas:    canvas,
		Backlight: bd.Backlight,
		Conn:      b.NewConnection("eyes"),
	})
	if err != nil {
		halt("eyes", err)
	}
	refl, err := lamps.New(bd.Lamps, b.NewConnection("lamps"))
	if err != nil {
		halt("lamps", err)
	}

	if err := eng.Start(); err != nil {
		logx.Warn("main", "initial frame", "err", err)
	}
	logx.Info("main", "running", "board", cfg.Name)

	for {
		now := bd.Clock.NowMs()
		_ = eng.Tick(now) // logged by the engine; the next tick redraws
		refl.Update(now)
		for m, ok := events.TryRecv(); ok; m, ok = events.TryRecv() {
			if ev, isMode := m.Payload.(eyes.ModeEvent); isMode {
				logx.Info("main", "mode", "mode", ev.Mode.String(), "t", ev.At)
			}
		}
		time.Sleep(frameDelay)
	}
}

func seed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func halt(tag string, err error) {
	logx.Error(tag, "startup failed", "err", err)
	for {
		time.Sleep(time.Second)
	}
}
