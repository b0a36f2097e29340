// services/hal/internal/platform/platform_test.go

//go:build !rp2040

package platform

import (
	"errors"
	"image/color"
	"testing"

	"roboeyes-go/errcode"
	"roboeyes-go/services/config"
	"roboeyes-go/services/display"

	"tinygo.org/x/drivers"
)

func TestDuty(t *testing.T) {
	tests := []struct {
		top   uint32
		level uint8
		want  uint32
	}{
		{0xffff, 0, 0},
		{0xffff, 255, 0xffff},
		{255, 200, 200},
		{1000, 128, 501},
	}
	for _, tc := range tests {
		if got := duty(tc.top, tc.level); got != tc.want {
			t.Fatalf("duty(%d,%d)=%d want %d", tc.top, tc.level, got, tc.want)
		}
	}
}

func TestPanelSizeRotation(t *testing.T) {
	p := config.Panel{Width: 240, Height: 320}
	for _, tc := range []struct {
		r    drivers.Rotation
		w, h int16
	}{
		{drivers.Rotation0, 240, 320},
		{drivers.Rotation90, 320, 240},
		{drivers.Rotation180, 240, 320},
		{drivers.Rotation270, 320, 240},
	} {
		p.Rotation = tc.r
		if w, h := PanelSize(p); w != tc.w || h != tc.h {
			t.Fatalf("rotation %d: %dx%d", tc.r, w, h)
		}
	}
}

func TestHostPinFactory(t *testing.T) {
	f := DefaultPinFactory().(*HostPinFactory)
	a, ok := f.ByNumber(5)
	if !ok {
		t.Fatal("pin 5 missing")
	}
	b, _ := f.ByNumber(5)
	if a != b {
		t.Fatal("factory must return the same pin")
	}
	if _, ok := f.ByNumber(MaxPin + 1); ok {
		t.Fatal("pin beyond GP28 accepted")
	}

	_ = a.ConfigureOutput(true)
	fp, _ := f.Get(5)
	if !fp.Output() || !a.Get() {
		t.Fatal("output not configured high")
	}
	a.Set(false)
	if a.Get() {
		t.Fatal("set low ignored")
	}
	_ = a.ConfigureInput(PullUp)
	if fp.Output() || !a.Get() {
		t.Fatal("pull-up input must read high")
	}
}

func TestCanvasPresentsOntoFakePanel(t *testing.T) {
	b, err := config.Lookup("")
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewPanel(b)
	if err != nil {
		t.Fatal(err)
	}
	fp := p.(*FakePanel)
	if fp.W != 320 || fp.H != 240 {
		t.Fatalf("panel %dx%d", fp.W, fp.H)
	}

	c := display.NewForPanel(p, display.White)
	c.Clear(display.Black)
	c.FillRoundRect(10, 20, 30, 40, 5, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	if err := c.Present(0, 0); err != nil {
		t.Fatal(err)
	}
	if !fp.Lit(25, 40) || fp.Lit(5, 40) || fp.Lit(10, 20) {
		t.Fatal("picture not transferred")
	}
	if fp.Bands != 240/8 {
		t.Fatalf("bands = %d", fp.Bands)
	}

	fp.Err = errors.New("spi")
	if err := c.Present(0, 0); err == nil {
		t.Fatal("panel error swallowed")
	}
}

func TestFakePanelRejectsOverflow(t *testing.T) {
	p := NewFakePanel(4, 4)
	if err := p.DrawRGBBitmap8(2, 0, make([]uint8, 4*4*2), 4, 4); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("err = %v", err)
	}
}

func TestBacklight(t *testing.T) {
	b, _ := config.Lookup("")
	bl, err := NewBacklight(b)
	if err != nil {
		t.Fatal(err)
	}
	bl.SetBrightness(255)
	fb := bl.(*FakeBacklight)
	if fb.Level != 255 || fb.Duty != fakePWMTop || fb.Sets != 1 {
		t.Fatalf("%+v", fb)
	}
}

func TestOpenConsole(t *testing.T) {
	if w, err := OpenConsole(config.Console{UART: "uart0", Baud: 115200}); err != nil || w != nil {
		t.Fatalf("w=%v err=%v", w, err)
	}
	if _, err := OpenConsole(config.Console{UART: "uart7"}); errcode.Of(err) != errcode.UnknownBus {
		t.Fatalf("err = %v", err)
	}
}
