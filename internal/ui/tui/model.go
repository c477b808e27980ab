package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/create-bluewaves-app/internal/provisioning"
	"github.com/imamik/create-bluewaves-app/internal/ui/benchmarks"
)

// StepStatus is the display state of one step.
type StepStatus int

// Step states.
const (
	StepPending StepStatus = iota
	StepActive
	StepDone
	StepFailed
	StepWarning
)

// StepRow represents a pipeline step for display.
type StepRow struct {
	Label     string
	Status    StepStatus
	StartedAt time.Time
	Duration  time.Duration
	Err       error
}

// Model is the Bubble Tea model for the provisioning progress view.
type Model struct {
	ProjectName string

	Steps   []StepRow
	Current int

	// ETA
	EstimatedRemaining time.Duration
	TypicalDuration    time.Duration
	StartTime          time.Time

	// Animation
	SpinnerFrame int

	// UI state
	Width       int
	Err         error
	Done        bool
	Interrupted bool
}

// NewProvisionModel creates a model with one pending row per step label.
func NewProvisionModel(projectName string, labels []string) Model {
	steps := make([]StepRow, len(labels))
	for i, label := range labels {
		steps[i] = StepRow{Label: label}
	}
	m := Model{
		ProjectName:      projectName,
		Steps:            steps,
		StartTime:        time.Now(),
		TypicalDuration:  benchmarks.TotalEstimate(labels),
	}
	m.updateETA()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Interrupted = true
			m.Err = ErrInterrupted
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width

	case StepEventMsg:
		m.applyEvent(msg.Event)

	case TickMsg:
		m.SpinnerFrame++
		m.updateETA()
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit

	case DoneMsg:
		m.Done = true
		m.EstimatedRemaining = 0
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) applyEvent(event provisioning.Event) {
	if event.Index < 0 || event.Index >= len(m.Steps) {
		return
	}
	row := &m.Steps[event.Index]

	switch event.Type {
	case provisioning.EventStepStarted:
		row.Status = StepActive
		row.StartedAt = event.Timestamp
		m.Current = event.Index
	case provisioning.EventStepCompleted:
		row.Status = StepDone
		row.Duration = event.Duration
	case provisioning.EventStepFailed:
		row.Status = StepFailed
		row.Duration = event.Duration
		row.Err = event.Err
	case provisioning.EventStepWarning:
		row.Status = StepWarning
		row.Duration = event.Duration
		row.Err = event.Err
	}
	m.updateETA()
}

func (m *Model) updateETA() {
	if m.Done || m.Current >= len(m.Steps) {
		m.EstimatedRemaining = 0
		return
	}

	labels := make([]string, len(m.Steps))
	var completed []time.Duration
	for i, row := range m.Steps {
		labels[i] = row.Label
		if i < m.Current {
			completed = append(completed, row.Duration)
		}
	}

	var stepElapsed time.Duration
	if row := m.Steps[m.Current]; row.Status == StepActive && !row.StartedAt.IsZero() {
		stepElapsed = time.Since(row.StartedAt)
	}

	current := m.Current
	if m.Steps[current].Status == StepDone || m.Steps[current].Status == StepWarning {
		completed = append(completed, m.Steps[current].Duration)
		current++
		stepElapsed = 0
	}

	m.EstimatedRemaining = benchmarks.EstimateRemaining(labels, current, stepElapsed, completed)
}

// completedCount returns the number of steps that finished, including
// those that finished with a warning.
func (m Model) completedCount() int {
	n := 0
	for _, row := range m.Steps {
		if row.Status == StepDone || row.Status == StepWarning {
			n++
		}
	}
	return n
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
