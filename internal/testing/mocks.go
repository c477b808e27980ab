package testing

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/imamik/create-bluewaves-app/internal/config"
	"github.com/imamik/create-bluewaves-app/internal/util/shell"
)

// MockRunner is a testify mock of shell.Runner.
type MockRunner struct {
	mock.Mock
}

// Run records the call and returns the configured error.
func (m *MockRunner) Run(ctx context.Context, cmd shell.Command) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

// Output records the call and returns the configured output and error.
func (m *MockRunner) Output(ctx context.Context, cmd shell.Command) (string, error) {
	args := m.Called(ctx, cmd)
	return args.String(0), args.Error(1)
}

// CommandHook is invoked instead of running a matching command.
type CommandHook func(cmd shell.Command) error

type hook struct {
	match string
	fn    CommandHook
}

// RecordingRunner records every command and never starts a process.
// Hooks registered with OnCommand simulate side effects or failures.
type RecordingRunner struct {
	mu       sync.Mutex
	commands []shell.Command
	hooks    []hook
	outputs  map[string]string
}

// NewRecordingRunner creates an empty RecordingRunner.
func NewRecordingRunner() *RecordingRunner {
	return &RecordingRunner{outputs: make(map[string]string)}
}

// OnCommand registers fn for every command whose command line contains
// match. The first matching hook wins.
func (r *RecordingRunner) OnCommand(match string, fn CommandHook) *RecordingRunner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks = append(r.hooks, hook{match: match, fn: fn})
	return r
}

// SetOutput sets the standard output returned by Output for a command line.
func (r *RecordingRunner) SetOutput(commandLine, output string) *RecordingRunner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outputs[commandLine] = output
	return r
}

// Run implements shell.Runner.
func (r *RecordingRunner) Run(ctx context.Context, cmd shell.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	r.commands = append(r.commands, cloneCommand(cmd))
	fn := r.match(cmd)
	r.mu.Unlock()

	if fn != nil {
		return fn(cmd)
	}
	return nil
}

// Output implements shell.Runner.
func (r *RecordingRunner) Output(ctx context.Context, cmd shell.Command) (string, error) {
	if err := r.Run(ctx, cmd); err != nil {
		return "", err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outputs[cmd.String()], nil
}

// Commands returns the recorded commands in execution order.
func (r *RecordingRunner) Commands() []shell.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.commands)
}

// CommandLines returns the recorded commands rendered as strings.
func (r *RecordingRunner) CommandLines() []string {
	cmds := r.Commands()
	lines := make([]string, len(cmds))
	for i, c := range cmds {
		lines[i] = c.String()
	}
	return lines
}

func (r *RecordingRunner) match(cmd shell.Command) CommandHook {
	line := cmd.String()
	for _, h := range r.hooks {
		if strings.Contains(line, h.match) {
			return h.fn
		}
	}
	return nil
}

func cloneCommand(c shell.Command) shell.Command {
	c.Args = slices.Clone(c.Args)
	return c
}

// MockPrompter is a testify mock of the wizard's Prompter.
type MockPrompter struct {
	mock.Mock
}

// ProjectName records the call and returns the configured answer.
func (m *MockPrompter) ProjectName(ctx context.Context, def string) (string, error) {
	args := m.Called(ctx, def)
	return args.String(0), args.Error(1)
}

// Template records the call and returns the configured answer.
func (m *MockPrompter) Template(ctx context.Context, def config.Template) (config.Template, error) {
	args := m.Called(ctx, def)
	return args.Get(0).(config.Template), args.Error(1)
}

// PackageManager records the call and returns the configured answer.
func (m *MockPrompter) PackageManager(ctx context.Context, def config.PackageManager) (config.PackageManager, error) {
	args := m.Called(ctx, def)
	return args.Get(0).(config.PackageManager), args.Error(1)
}

// ConfirmOverwrite records the call and returns the configured answer.
func (m *MockPrompter) ConfirmOverwrite(ctx context.Context, dir string) (bool, error) {
	args := m.Called(ctx, dir)
	return args.Bool(0), args.Error(1)
}
