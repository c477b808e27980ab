// Package tui provides a Bubble Tea-based terminal UI for project provisioning.
package tui

import (
	"errors"

	"github.com/imamik/create-bluewaves-app/internal/provisioning"
)

// ErrInterrupted is returned when the operator stops the run with ctrl+c.
var ErrInterrupted = errors.New("interrupted by user")

// StepEventMsg carries one pipeline event.
type StepEventMsg struct {
	Event provisioning.Event
}

// TickMsg is sent periodically to refresh the display.
type TickMsg struct{}

// ErrMsg carries the error that ended the run.
type ErrMsg struct {
	Err error
}

// DoneMsg signals that every step finished.
type DoneMsg struct{}
