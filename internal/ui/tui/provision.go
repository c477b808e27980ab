package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/create-bluewaves-app/internal/provisioning"
)

// RunFunc runs the pipeline, reporting progress to observer.
type RunFunc func(ctx context.Context, observer provisioning.Observer) error

// RunProvisionTUI wraps a pipeline run with an inline Bubble Tea progress
// view. run is executed in a background goroutine; its events reach the view
// over a channel. After ctrl+c the context handed to run is cancelled and the
// call returns ErrInterrupted once the running step has finished.
func RunProvisionTUI(ctx context.Context, projectName string, labels []string, run RunFunc, opts ...tea.ProgramOption) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewProvisionModel(projectName, labels)
	p := tea.NewProgram(m, opts...)

	finished := make(chan error, 1)
	go func() {
		ch := make(chan provisioning.Event, 16)
		var runErr error
		go func() {
			defer close(ch)
			runErr = run(runCtx, provisioning.ObserverFunc(func(e provisioning.Event) {
				ch <- e
			}))
		}()

		for event := range ch {
			p.Send(StepEventMsg{Event: event})
		}

		if runErr != nil {
			p.Send(ErrMsg{Err: runErr})
		} else {
			p.Send(DoneMsg{})
		}
		finished <- runErr
	}()

	finalModel, err := p.Run()
	if err != nil {
		cancel()
		<-finished
		return fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Interrupted {
		cancel()
		<-finished
		return ErrInterrupted
	}

	runErr := <-finished
	if fm.Err != nil {
		return fm.Err
	}
	return runErr
}
