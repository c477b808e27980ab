package provisioning

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Observer receives progress events from a running pipeline.
type Observer interface {
	// Event emits a structured event
	Event(event Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// Event implements Observer.
func (f ObserverFunc) Event(event Event) {
	f(event)
}

// Event represents a structured provisioning event.
type Event struct {
	Type      EventType     // Type of event
	Step      string        // Step label
	Index     int           // Zero-based position of the step
	Total     int           // Number of steps in the pipeline
	Message   string        // Human-readable message
	Err       error         // Cause for failed and warning events
	Duration  time.Duration // Step duration for completed, failed and warning events
	Timestamp time.Time     // When the event occurred
}

// EventType represents the type of provisioning event.
type EventType string

const (
	// EventStepStarted indicates a step has started.
	EventStepStarted EventType = "step.started"
	// EventStepCompleted indicates a step completed successfully.
	EventStepCompleted EventType = "step.completed"
	// EventStepFailed indicates an aborting step failed.
	EventStepFailed EventType = "step.failed"
	// EventStepWarning indicates a non-aborting step failed and the
	// pipeline carried on.
	EventStepWarning EventType = "step.warning"
)

// ConsoleObserver writes one line per event.
type ConsoleObserver struct {
	mu sync.Mutex
	w  io.Writer
	// ShowWarnings controls whether step.warning events are printed.
	ShowWarnings bool
}

// NewConsoleObserver creates a console observer writing to w.
func NewConsoleObserver(w io.Writer) *ConsoleObserver {
	return &ConsoleObserver{w: w}
}

// Event implements Observer.
func (o *ConsoleObserver) Event(event Event) {
	line := o.formatEvent(event)
	if line == "" {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	_, _ = fmt.Fprintln(o.w, line)
}

// formatEvent formats an event for console output.
func (o *ConsoleObserver) formatEvent(event Event) string {
	position := fmt.Sprintf("[%d/%d]", event.Index+1, event.Total)
	switch event.Type {
	case EventStepStarted:
		return fmt.Sprintf("%s %s...", position, event.Step)
	case EventStepCompleted:
		return fmt.Sprintf("%s %s done in %v", position, event.Step, event.Duration.Round(time.Millisecond))
	case EventStepFailed:
		return fmt.Sprintf("%s %s failed: %v", position, event.Step, event.Err)
	case EventStepWarning:
		if !o.ShowWarnings {
			return ""
		}
		return fmt.Sprintf("%s %s skipped: %v", position, event.Step, event.Err)
	default:
		return event.Message
	}
}

// MultiObserver fans events out to several observers.
type MultiObserver []Observer

// Event implements Observer.
func (m MultiObserver) Event(event Event) {
	for _, o := range m {
		if o != nil {
			o.Event(event)
		}
	}
}
