package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/imamik/create-bluewaves-app/internal/apperr"
	testutil "github.com/imamik/create-bluewaves-app/internal/testing"
	"github.com/imamik/create-bluewaves-app/internal/util/shell"
)

var nodeVersionCmd = shell.Command{Name: "node", Args: []string{"--version"}}

func lookPathOf(found ...string) func(string) (string, error) {
	return func(file string) (string, error) {
		for _, f := range found {
			if f == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func TestValidateEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		version      string
		tools        []string
		wantErr      bool
		wantWarnings int
	}{
		{"minimum version", "v18.0.0", []string{"node", "git"}, false, 0},
		{"newer version", "v22.11.0", []string{"node", "git"}, false, 0},
		{"minor above", "v18.19.1", []string{"node", "git"}, false, 0},
		{"too old", "v16.20.2", []string{"node", "git"}, true, 0},
		{"old major with large minor", "v9.99.0", []string{"node", "git"}, true, 0},
		{"git missing", "v20.0.0", []string{"node"}, false, 1},
		{"unparsable", "not-a-version", []string{"node", "git"}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			runner := &testutil.MockRunner{}
			runner.On("Output", mock.Anything, nodeVersionCmd).Return(tt.version, nil)

			warnings, err := ValidateEnvironment(testutil.TestContext(t), Environment{
				Runner:   runner,
				LookPath: lookPathOf(tt.tools...),
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, apperr.UnsupportedRuntimeVersion, apperr.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Len(t, warnings, tt.wantWarnings)
		})
	}
}

func TestValidateEnvironment_NodeMissing(t *testing.T) {
	t.Parallel()

	runner := &testutil.MockRunner{}
	_, err := ValidateEnvironment(testutil.TestContext(t), Environment{
		Runner:   runner,
		LookPath: lookPathOf("git"),
	})

	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.UnsupportedRuntimeVersion))
	runner.AssertNotCalled(t, "Output", mock.Anything, mock.Anything)
}

func TestValidateEnvironment_VersionProbeFails(t *testing.T) {
	t.Parallel()

	probeErr := errors.New("exit status 1")
	runner := &testutil.MockRunner{}
	runner.On("Output", mock.Anything, nodeVersionCmd).Return("", probeErr)

	_, err := ValidateEnvironment(testutil.TestContext(t), Environment{
		Runner:   runner,
		LookPath: lookPathOf("node", "git"),
	})

	assert.True(t, apperr.Is(err, apperr.UnsupportedRuntimeVersion))
	assert.ErrorIs(t, err, probeErr)
}

func TestCheckNodeVersion(t *testing.T) {
	tests := []struct {
		out     string
		wantErr bool
	}{
		{"v18.0.0", false},
		{"v22.3.1", false},
		{"20.11.0", false},
		{"v16.20.2", true},
		{"not-a-version", true},
	}
	for _, tt := range tests {
		t.Run(tt.out, func(t *testing.T) {
			err := CheckNodeVersion(tt.out)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.UnsupportedRuntimeVersion))
		})
	}
}
