package handlers

import (
	"context"
	"errors"
	"io"

	"github.com/imamik/create-bluewaves-app/internal/config/wizard"
	"github.com/imamik/create-bluewaves-app/internal/ui/banner"
	"github.com/imamik/create-bluewaves-app/internal/ui/tui"
)

// IsCancellation reports whether err means the operator stopped the run,
// either in a prompt, in the progress view or with a signal between steps.
func IsCancellation(err error) bool {
	return errors.Is(err, wizard.ErrCancelled) ||
		errors.Is(err, tui.ErrInterrupted) ||
		errors.Is(err, context.Canceled)
}

// ReportError prints err for the operator: one red-prefixed line, plus the
// cause chain when verbose.
func ReportError(w io.Writer, err error, verbose bool) {
	if IsCancellation(err) {
		banner.Cancelled(w)
		return
	}
	banner.Error(w, err, verbose)
}
