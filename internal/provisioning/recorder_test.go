package provisioning

import "sync"

// RecordingObserver keeps every event it receives.
type RecordingObserver struct {
	mu     sync.Mutex
	events []Event
}

// NewRecordingObserver creates an empty RecordingObserver.
func NewRecordingObserver() *RecordingObserver {
	return &RecordingObserver{}
}

// Event implements Observer.
func (r *RecordingObserver) Event(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns the recorded events in order.
func (r *RecordingObserver) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Warnings returns the warning events.
func (r *RecordingObserver) Warnings() []Event {
	var out []Event
	for _, e := range r.Events() {
		if e.Type == EventStepWarning {
			out = append(out, e)
		}
	}
	return out
}
