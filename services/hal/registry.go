// services/hal/registry.go

package hal

import (
	"sync"

	"roboeyes-go/errcode"
	"roboeyes-go/services/hal/internal/platform"
)

type pinOwner struct {
	owner string
	pin   platform.GPIOPin
}

// Registry hands out GPIO pins to one owner at a time.
type Registry struct {
	mu     sync.Mutex
	pins   platform.PinFactory
	owners map[int]pinOwner
}

func NewRegistry(f platform.PinFactory) *Registry {
	return &Registry{pins: f, owners: make(map[int]pinOwner)}
}

// ClaimPin reserves pin n for owner. A pin already held by another owner
// fails with PinInUse; claiming it again for the same owner is a no-op.
func (r *Registry) ClaimPin(owner string, n int) (platform.GPIOPin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o, inUse := r.owners[n]; inUse {
		if o.owner == owner {
			return o.pin, nil
		}
		return nil, &errcode.E{C: errcode.PinInUse, Op: "hal.ClaimPin", Msg: owner + " wants pin held by " + o.owner}
	}
	p, ok := r.pins.ByNumber(n)
	if !ok {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "hal.ClaimPin", Msg: owner}
	}
	r.owners[n] = pinOwner{owner: owner, pin: p}
	return p, nil
}

// ReleasePin puts pin n back to a plain input if owner holds it.
func (r *Registry) ReleasePin(owner string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.owners[n]; ok && o.owner == owner {
		_ = o.pin.ConfigureInput(platform.PullNone)
		delete(r.owners, n)
	}
}
