package refresh

import (
	"maps"
	"time"
)

// State is the state of a fetch.
type State string

const (
	StateRunning State = "running"
	StateDone    State = "done"
	StateError   State = "error"
)

// Status is the health of one result key.
type Status struct {
	Key               string    `json:"key"`
	Group             Group     `json:"group"`
	State             State     `json:"state"`
	LastError         string    `json:"lastError,omitempty"`
	ConsecutiveErrors int       `json:"consecutiveErrors"`
	LastSuccess       time.Time `json:"lastSuccess,omitzero"`
	LastAttempt       time.Time `json:"lastAttempt,omitzero"`
}

// Tracker records per-key status. It is not safe for concurrent use; the
// owner serializes access.
type Tracker struct {
	statuses map[string]Status
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{statuses: make(map[string]Status)}
}

// Record folds r into the status of its key. A success clears the last
// error; a failure keeps LastSuccess so stale data can be flagged.
func (t *Tracker) Record(r Result, now time.Time) Status {
	s := t.statuses[r.Key()]
	s.Key, s.Group, s.LastAttempt = r.Key(), r.Group(), now
	if err := r.Failure(); err != nil {
		s.State = StateError
		s.LastError = err.Error()
		s.ConsecutiveErrors++
	} else {
		s.State = StateDone
		s.LastError = ""
		s.ConsecutiveErrors = 0
		s.LastSuccess = now
	}
	t.statuses[r.Key()] = s
	return s
}

// Get returns the status for key.
func (t *Tracker) Get(key string) (Status, bool) {
	s, ok := t.statuses[key]
	return s, ok
}

// All returns a copy of every status.
func (t *Tracker) All() map[string]Status {
	return maps.Clone(t.statuses)
}
