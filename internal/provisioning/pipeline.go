package provisioning

import (
	"fmt"
	"time"

	"github.com/imamik/create-bluewaves-app/internal/logging"
)

// Step is one named unit of provisioning work.
type Step struct {
	Label  string
	Action func(ctx *Context) error
	// AbortOnFailure stops the pipeline when Action fails. When false the
	// failure is reported as a warning and the pipeline continues.
	AbortOnFailure bool
}

// StepError reports the step that aborted the pipeline.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Pipeline executes steps in order.
type Pipeline struct {
	Steps []Step
}

// NewPipeline creates a pipeline from steps.
func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{Steps: steps}
}

// Labels returns the step labels in execution order.
func (p *Pipeline) Labels() []string {
	labels := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		labels[i] = s.Label
	}
	return labels
}

// Run executes all steps sequentially. Cancellation of ctx is honoured
// between steps only; a running step is never interrupted.
func (p *Pipeline) Run(ctx *Context) error {
	total := len(p.Steps)
	observer := ctx.Observer
	if observer == nil {
		observer = MultiObserver(nil)
	}

	for i, step := range p.Steps {
		if err := ctx.Err(); err != nil {
			return &StepError{Step: step.Label, Err: err}
		}

		start := time.Now()
		observer.Event(Event{
			Type:      EventStepStarted,
			Step:      step.Label,
			Index:     i,
			Total:     total,
			Timestamp: start,
		})
		logging.Debug(ctx.Log).Info("step started", "step", step.Label, "index", i+1, "total", total)

		err := step.Action(ctx)
		event := Event{
			Step:      step.Label,
			Index:     i,
			Total:     total,
			Err:       err,
			Duration:  time.Since(start),
			Timestamp: time.Now(),
		}

		switch {
		case err == nil:
			event.Type = EventStepCompleted
			observer.Event(event)
		case step.AbortOnFailure:
			event.Type = EventStepFailed
			event.Message = err.Error()
			observer.Event(event)
			return &StepError{Step: step.Label, Err: err}
		default:
			event.Type = EventStepWarning
			event.Message = err.Error()
			observer.Event(event)
			logging.Debug(ctx.Log).Info("non-fatal step failed", "step", step.Label, "error", err.Error())
		}
	}

	return nil
}
