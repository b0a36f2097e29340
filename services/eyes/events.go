// services/eyes/events.go
package eyes

import "roboeyes-go/bus"

// Topics the engine publishes on. Both are retained, so a late subscriber
// sees the current mode and phase at once.
var (
	TopicMode  = bus.T("eyes", "mode")
	TopicPhase = bus.T("eyes", "phase")
)

// ModeEvent is published on every mode switch and once by Start.
type ModeEvent struct {
	Mode Mode
	At   int64
}

// PhaseEvent is published on every slot or sleep phase change.
type PhaseEvent struct {
	Mode  Mode
	Phase string
	At    int64

	Result     int   // slot result, 0 until rolled
	Brightness uint8 // sleep backlight level
}

func (e *Engine) publish(topic bus.Topic, payload any) {
	if e.d.Conn == nil {
		return
	}
	e.d.Conn.PublishRetained(topic, payload)
}
