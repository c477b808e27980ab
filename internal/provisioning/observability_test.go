package provisioning

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsoleObserver(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		event        Event
		showWarnings bool
		want         string
	}{
		{
			name:  "started",
			event: Event{Type: EventStepStarted, Step: "Final touches", Index: 6, Total: 7},
			want:  "[7/7] Final touches...\n",
		},
		{
			name:  "completed",
			event: Event{Type: EventStepCompleted, Step: "Installing shadcn/ui", Index: 1, Total: 7, Duration: 1500 * time.Millisecond},
			want:  "[2/7] Installing shadcn/ui done in 1.5s\n",
		},
		{
			name:  "failed",
			event: Event{Type: EventStepFailed, Step: "Installing dependencies", Index: 4, Total: 7, Err: errors.New("exit status 1")},
			want:  "[5/7] Installing dependencies failed: exit status 1\n",
		},
		{
			name:  "warning hidden",
			event: Event{Type: EventStepWarning, Step: "Initializing git repository", Index: 5, Total: 7, Err: errors.New("no git")},
			want:  "",
		},
		{
			name:         "warning shown",
			event:        Event{Type: EventStepWarning, Step: "Initializing git repository", Index: 5, Total: 7, Err: errors.New("no git")},
			showWarnings: true,
			want:         "[6/7] Initializing git repository skipped: no git\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			observer := NewConsoleObserver(&buf)
			observer.ShowWarnings = tt.showWarnings

			observer.Event(tt.event)

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestMultiObserver(t *testing.T) {
	t.Parallel()

	a := NewRecordingObserver()
	b := NewRecordingObserver()
	var called int
	multi := MultiObserver{a, nil, b, ObserverFunc(func(Event) { called++ })}

	multi.Event(Event{Type: EventStepStarted, Step: "x"})

	assert.Len(t, a.Events(), 1)
	assert.Len(t, b.Events(), 1)
	assert.Equal(t, 1, called)
}
