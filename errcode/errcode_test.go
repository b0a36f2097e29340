// errcode/errcode_test.go

package errcode

import (
	"errors"
	"testing"
)

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatal("nil must map to OK")
	}
	if Of(PinInUse) != PinInUse {
		t.Fatal("bare code lost")
	}
	cause := errors.New("spi busy")
	err := Wrap(DisplayInit, "panel.configure", cause)
	if Of(err) != DisplayInit {
		t.Fatalf("Of(wrapped)=%q", Of(err))
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause not reachable through Unwrap")
	}
	if err.Error() != "panel.configure: display_init: spi busy" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if Of(errors.New("x")) != Error {
		t.Fatal("foreign errors must map to Error")
	}
	if Wrap(DisplayInit, "op", nil) != nil {
		t.Fatal("Wrap(nil) must be nil")
	}
}
