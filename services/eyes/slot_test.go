// services/eyes/slot_test.go

package eyes

import (
	"strconv"
	"testing"
)

func TestSlotScenario(t *testing.T) {
	var m SlotMachine
	rnd := &scriptRand{vals: []int{17}}
	m.Reset(0)

	if m.Update(1499, rnd) {
		t.Fatal("left Start early")
	}
	if !m.Update(1500, rnd) || m.Phase != SlotSpinning || m.SpinMs != slotSpinMs || m.Start != 1500 {
		t.Fatalf("Start->Spinning failed: %+v", m)
	}
	if m.Update(4499, rnd) {
		t.Fatal("stopped spinning early")
	}
	if !m.Update(4500, rnd) || m.Phase != SlotResult || m.Result != 17 {
		t.Fatalf("Spinning->Result failed: %+v", m)
	}
	if m.Update(7499, rnd) {
		t.Fatal("left Result early")
	}
	if !m.Update(7500, rnd) || m.Phase != SlotEnd {
		t.Fatalf("Result->End failed: %+v", m)
	}
	if m.Update(1_000_000, rnd) || m.Phase != SlotEnd {
		t.Fatal("End must hold until reset")
	}

	m.Reset(2_000_000)
	if m.Phase != SlotStart || m.Start != 2_000_000 || m.Result != 0 {
		t.Fatalf("reset left %+v", m)
	}
}

func TestSlotResultAlwaysInRange(t *testing.T) {
	rnd := NewMathRand(7)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		var m SlotMachine
		m.Reset(0)
		m.Update(slotIntroMs, rnd)
		m.Update(slotIntroMs+slotSpinMs, rnd)
		if m.Result < 1 || m.Result > 20 {
			t.Fatalf("result %d outside [1,20]", m.Result)
		}
		seen[m.Result] = true
	}
	if len(seen) != 20 {
		t.Fatalf("only %d distinct results in 2000 rolls", len(seen))
	}
}

func TestResultDigitsRendered(t *testing.T) {
	l := NewLayout(320, 240)
	for _, n := range []int{1, 9, 10, 17, 20} {
		cv := newRecCanvas(t)
		Render(cv, l, Frame{Mode: ModeSlotGame, Slot: SlotResult, SlotResult: n})
		var left, right string
		for _, o := range cv.ops {
			if o.kind != "text" {
				continue
			}
			if o.size != digitSize || int(o.y) != l.CY-digitLift {
				t.Fatalf("result digit placed at y=%d size=%d", o.y, o.size)
			}
			switch int(o.x) {
			case l.LeftCX - digitInset:
				left = o.text
			case l.RightCX - digitInset:
				right = o.text
			}
		}
		if left != strconv.Itoa(n/10) || right != strconv.Itoa(n%10) {
			t.Fatalf("result %d drawn as %q %q", n, left, right)
		}
	}
}

func TestSlotIntroAndOutroGeometry(t *testing.T) {
	l := NewLayout(320, 240)
	cv := newRecCanvas(t)

	Render(cv, l, Frame{Mode: ModeSlotGame, Slot: SlotStart, Elapsed: 0})
	if cv.count("rect") != 2 || cv.ops[0].y != int16(l.RestY) {
		t.Fatalf("intro must start with resting eyes: %+v", cv.ops)
	}

	// Half way the eyes have moved down by half the screen.
	Render(cv, l, Frame{Mode: ModeSlotGame, Slot: SlotStart, Elapsed: slotIntroMs / 2})
	for _, o := range cv.ops {
		if o.kind == "rect" && int(o.y) != l.RestY+l.H/2 {
			t.Fatalf("eye at y=%d, want %d", o.y, l.RestY+l.H/2)
		}
	}

	// Outro first half: only digits.
	Render(cv, l, Frame{Mode: ModeSlotGame, Slot: SlotEnd, SlotResult: 12, Elapsed: 100})
	if cv.count("rect") != 0 || cv.count("text") != 2 {
		t.Fatalf("outro first half drew %+v", cv.ops)
	}

	// Past 80% of the second half the eyes rest.
	Render(cv, l, Frame{Mode: ModeSlotGame, Slot: SlotEnd, Elapsed: 1400})
	if cv.count("text") != 0 || cv.count("rect") != 2 || int(cv.ops[0].y) != l.RestY {
		t.Fatalf("outro tail drew %+v", cv.ops)
	}

	// After the outro the resting eyes stay.
	Render(cv, l, Frame{Mode: ModeSlotGame, Slot: SlotEnd, Elapsed: 60_000})
	if cv.count("rect") != 2 || int(cv.ops[0].y) != l.RestY {
		t.Fatalf("terminal End drew %+v", cv.ops)
	}
}

func TestReelDigitsCycle(t *testing.T) {
	l := NewLayout(320, 240)
	cv := newRecCanvas(t)
	// 450ms: left reel on digit 2, right reel on digit 3.
	Render(cv, l, Frame{Mode: ModeSlotGame, Slot: SlotSpinning, Elapsed: 450})
	var left, right []string
	for _, o := range cv.ops {
		switch int(o.x) {
		case l.LeftCX - digitInset:
			left = append(left, o.text)
		case l.RightCX - digitInset:
			right = append(right, o.text)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		t.Fatal("reels not drawn")
	}
	has := func(ds []string, d string) bool {
		for _, x := range ds {
			if x == d {
				return true
			}
		}
		return false
	}
	if !has(left, "2") || !has(right, "3") {
		t.Fatalf("reel digits left=%v right=%v", left, right)
	}
}
