// Package shell runs the external tools a provisioning step shells out to.
//
// In verbose mode a command's output is streamed to the terminal as it runs;
// otherwise it is captured and attached to the returned error so a failure
// is still diagnosable.
package shell

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// maxOutputLines bounds how much captured output a CommandError carries.
const maxOutputLines = 20

// Command is a single external process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
}

// String renders the command line the way a user would type it.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner executes external commands.
type Runner interface {
	// Run executes cmd and waits for it to finish.
	Run(ctx context.Context, cmd Command) error

	// Output executes cmd and returns its trimmed standard output.
	Output(ctx context.Context, cmd Command) (string, error)
}

// CommandError reports a failed external command together with the tail of
// its captured output.
type CommandError struct {
	Command Command
	Output  string
	Err     error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Command, e.Err)
	if e.Output != "" {
		msg += "\n" + e.Output
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewExecRunner creates a runner. Nil writers default to the process's
// standard streams.
func NewExecRunner(verbose bool, stdout, stderr io.Writer) *ExecRunner {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &ExecRunner{Verbose: verbose, Stdout: stdout, Stderr: stderr}
}

// Run implements Runner. The context is only consulted before the process
// starts; a running process is never interrupted.
func (r *ExecRunner) Run(ctx context.Context, c Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// #nosec G204 - commands are assembled from fixed tool names and validated input
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Dir = c.Dir

	var captured bytes.Buffer
	if r.Verbose {
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr
	} else {
		cmd.Stdout = &captured
		cmd.Stderr = &captured
	}

	if err := cmd.Run(); err != nil {
		return pkgerrors.WithStack(&CommandError{
			Command: c,
			Output:  tail(captured.String(), maxOutputLines),
			Err:     err,
		})
	}
	return nil
}

// Output implements Runner.
func (r *ExecRunner) Output(ctx context.Context, c Command) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// #nosec G204 - commands are assembled from fixed tool names
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Dir = c.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", pkgerrors.WithStack(&CommandError{
			Command: c,
			Output:  tail(stderr.String(), maxOutputLines),
			Err:     err,
		})
	}
	return strings.TrimSpace(stdout.String()), nil
}

// tail returns at most n trailing non-empty lines of s.
func tail(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
