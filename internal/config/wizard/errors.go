package wizard

import "errors"

// ErrCancelled is returned when the operator aborts a prompt.
var ErrCancelled = errors.New("prompt cancelled")
