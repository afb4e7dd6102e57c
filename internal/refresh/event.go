package refresh

import "time"

// Event reports scheduler progress for live display or logging.
type Event struct {
	Group     Group
	Key       string
	State     State
	Message   string
	Timestamp time.Time
}

// Emitter receives scheduler events.
type Emitter interface {
	Emit(Event)
}

// ChanEmitter emits events to a channel.
type ChanEmitter struct {
	Ch chan<- Event
}

// Emit sends the event to the channel (non-blocking; drops if full).
func (e *ChanEmitter) Emit(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	select {
	case e.Ch <- ev:
	default:
		// Channel full; drop rather than stall a refresh
	}
}
