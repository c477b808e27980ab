package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imamik/create-bluewaves-app/cmd/create-bluewaves-app/handlers"
	"github.com/imamik/create-bluewaves-app/internal/ui/banner"
)

// handlerError marks an error returned by a handler, as opposed to one from
// argument or flag parsing.
type handlerError struct {
	err error
}

func (e *handlerError) Error() string { return e.err.Error() }

func (e *handlerError) Unwrap() error { return e.err }

// handled wraps a handler result.
func handled(err error) error {
	if err == nil {
		return nil
	}
	return &handlerError{err: err}
}

// Execute runs the CLI and returns the process exit code. Errors are
// printed here: handler errors through the error banner, parsing errors
// with a pointer to --help.
func Execute(ctx context.Context) int {
	return execute(ctx, Root())
}

func execute(ctx context.Context, root *cobra.Command) int {
	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}

	verbose, _ := root.PersistentFlags().GetBool("verbose")
	w := root.ErrOrStderr()

	var hErr *handlerError
	if errors.As(err, &hErr) {
		handlers.ReportError(w, hErr.err, verbose)
		return 1
	}

	banner.Fail(w, err.Error())
	_, _ = fmt.Fprintf(w, "Run '%s --help' for usage.\n", cmd.CommandPath())
	return 1
}
