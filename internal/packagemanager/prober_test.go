package packagemanager

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/imamik/create-bluewaves-app/internal/apperr"
	"github.com/imamik/create-bluewaves-app/internal/config"
	testutil "github.com/imamik/create-bluewaves-app/internal/testing"
	"github.com/imamik/create-bluewaves-app/internal/util/shell"
)

func newTestProber(t *testing.T, installed []string, env map[string]string) *Prober {
	t.Helper()
	return &Prober{
		Dir: t.TempDir(),
		LookPath: func(file string) (string, error) {
			for _, name := range installed {
				if name == file {
					return "/usr/local/bin/" + file, nil
				}
			}
			return "", errors.New("not found")
		},
		Getenv: func(key string) string { return env[key] },
		Runner: &testutil.MockRunner{},
		Log:    logr.Discard(),
	}
}

func writeLockfile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
}

func TestResolve_PreferredAvailable(t *testing.T) {
	t.Parallel()

	p := newTestProber(t, []string{"npm", "pnpm", "yarn"}, map[string]string{userAgentEnv: "pnpm/9.0.0 node/v20.0.0"})
	writeLockfile(t, p.Dir, "package-lock.json")

	info, err := p.Resolve(testutil.TestContext(t), config.PackageManagerYarn)
	require.NoError(t, err)
	assert.Equal(t, config.PackageManagerYarn, info.Name)
	assert.True(t, info.Available)
}

func TestResolve_PreferredMissingUsesDetection(t *testing.T) {
	t.Parallel()

	p := newTestProber(t, []string{"npm", "pnpm"}, nil)
	writeLockfile(t, p.Dir, "pnpm-lock.yaml")

	info, err := p.Resolve(testutil.TestContext(t), config.PackageManagerYarn)
	require.NoError(t, err)
	assert.Equal(t, config.PackageManagerPNPM, info.Name)
}

func TestResolve_DetectedFromLockfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lockfile string
		want     config.PackageManager
	}{
		{"pnpm-lock.yaml", config.PackageManagerPNPM},
		{"yarn.lock", config.PackageManagerYarn},
		{"package-lock.json", config.PackageManagerNPM},
	}

	for _, tt := range tests {
		t.Run(tt.lockfile, func(t *testing.T) {
			t.Parallel()
			p := newTestProber(t, []string{"npm", "pnpm", "yarn"}, nil)
			writeLockfile(t, p.Dir, tt.lockfile)

			info, err := p.Resolve(testutil.TestContext(t), "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, info.Name)
		})
	}
}

func TestResolve_DetectedFromUserAgent(t *testing.T) {
	t.Parallel()

	p := newTestProber(t, []string{"npm", "yarn"}, map[string]string{userAgentEnv: "yarn/1.22.22 npm/? node/v20.11.0 linux x64"})

	info, err := p.Resolve(testutil.TestContext(t), "")
	require.NoError(t, err)
	assert.Equal(t, config.PackageManagerYarn, info.Name)
}

func TestResolve_DetectedButMissingFallsBack(t *testing.T) {
	t.Parallel()

	p := newTestProber(t, []string{"pnpm", "yarn"}, nil)
	writeLockfile(t, p.Dir, "bun.lockb")

	info, err := p.Resolve(testutil.TestContext(t), "")
	require.NoError(t, err)
	assert.Equal(t, config.PackageManagerPNPM, info.Name, "first available in npm, pnpm, yarn order")
}

func TestResolve_FallbackOrder(t *testing.T) {
	t.Parallel()

	p := newTestProber(t, []string{"yarn", "npm"}, nil)

	info, err := p.Resolve(testutil.TestContext(t), "")
	require.NoError(t, err)
	assert.Equal(t, config.PackageManagerNPM, info.Name)
}

func TestResolve_NoneAvailable(t *testing.T) {
	t.Parallel()

	p := newTestProber(t, nil, map[string]string{userAgentEnv: "pnpm/9.0.0"})
	writeLockfile(t, p.Dir, "yarn.lock")

	_, err := p.Resolve(testutil.TestContext(t), config.PackageManagerNPM)
	require.Error(t, err)
	assert.Equal(t, apperr.NoPackageManager, apperr.CodeOf(err))
}

func TestDetect(t *testing.T) {
	t.Parallel()

	t.Run("lockfile wins over user agent", func(t *testing.T) {
		t.Parallel()
		p := newTestProber(t, nil, map[string]string{userAgentEnv: "npm/10.0.0"})
		writeLockfile(t, p.Dir, "yarn.lock")
		got, err := p.Detect()
		require.NoError(t, err)
		assert.Equal(t, config.PackageManagerYarn, got)
	})

	t.Run("lockfile precedence", func(t *testing.T) {
		t.Parallel()
		p := newTestProber(t, nil, nil)
		writeLockfile(t, p.Dir, "package-lock.json")
		writeLockfile(t, p.Dir, "pnpm-lock.yaml")
		got, err := p.Detect()
		require.NoError(t, err)
		assert.Equal(t, config.PackageManagerPNPM, got)
	})

	t.Run("bun lockfile", func(t *testing.T) {
		t.Parallel()
		p := newTestProber(t, nil, nil)
		writeLockfile(t, p.Dir, "bun.lockb")
		got, err := p.Detect()
		require.NoError(t, err)
		assert.Equal(t, config.PackageManagerBun, got)
	})

	t.Run("nothing to detect", func(t *testing.T) {
		t.Parallel()
		p := newTestProber(t, nil, nil)
		_, err := p.Detect()
		assert.ErrorIs(t, err, errNotDetected)
	})
}

func TestAvailable(t *testing.T) {
	t.Parallel()

	p := newTestProber(t, []string{"pnpm"}, nil)
	infos := p.Available()
	require.Len(t, infos, 3)
	assert.False(t, infos[0].Available)
	assert.True(t, infos[1].Available)
	assert.False(t, infos[2].Available)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	cmd := shell.Command{Name: "pnpm", Args: []string{"--version"}}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		p := newTestProber(t, nil, nil)
		runner := &testutil.MockRunner{}
		runner.On("Output", mock.Anything, cmd).Return("9.12.0", nil)
		p.Runner = runner

		got, err := p.Version(testutil.TestContext(t), config.PackageManagerPNPM)
		require.NoError(t, err)
		assert.Equal(t, "9.12.0", got)
		runner.AssertExpectations(t)
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()
		p := newTestProber(t, nil, nil)
		cause := errors.New("exit status 127")
		runner := &testutil.MockRunner{}
		runner.On("Output", mock.Anything, cmd).Return("", cause)
		p.Runner = runner

		_, err := p.Version(testutil.TestContext(t), config.PackageManagerPNPM)
		require.Error(t, err)
		assert.Equal(t, apperr.PackageManagerProbeFailed, apperr.CodeOf(err))
		assert.ErrorIs(t, err, cause)
	})
}
