package commands

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/imamik/create-bluewaves-app/internal/apperr"
	"github.com/imamik/create-bluewaves-app/internal/config/wizard"
	"github.com/imamik/create-bluewaves-app/internal/ui/banner"
)

func runRoot(t *testing.T, args ...string) (int, string) {
	t.Helper()
	color.NoColor = true

	var errOut bytes.Buffer
	root := Root()
	root.SetArgs(args)
	root.SetErr(&errOut)
	root.SetOut(&bytes.Buffer{})

	return execute(context.Background(), root), errOut.String()
}

func TestExecute_Success(t *testing.T) {
	stubCreate(t, nil)

	code, out := runRoot(t, "my-app")
	assert.Equal(t, 0, code)
	assert.Empty(t, out)
}

func TestExecute_TaxonomyError(t *testing.T) {
	stubCreate(t, apperr.New(apperr.InvalidProjectName, "Invalid project name: %s", "name can no longer contain capital letters"))

	code, out := runRoot(t, "MyApp")
	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: Invalid project name: name can no longer contain capital letters\n", out)
}

func TestExecute_UnexpectedError(t *testing.T) {
	stubCreate(t, errors.New("exit status 1"))

	code, out := runRoot(t, "my-app")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, banner.UnexpectedErrorMessage)
}

func TestExecute_Cancelled(t *testing.T) {
	stubCreate(t, wizard.ErrCancelled)

	code, out := runRoot(t, "my-app")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, banner.CancelledMessage)
}

func TestExecute_UsageError(t *testing.T) {
	stubCreate(t, nil)

	code, out := runRoot(t, "my-app", "--no-such-flag")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Error: unknown flag: --no-such-flag")
	assert.Contains(t, out, "--help")
	assert.NotContains(t, out, banner.UnexpectedErrorMessage)
}
