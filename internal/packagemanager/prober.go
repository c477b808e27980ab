package packagemanager

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"

	"github.com/imamik/create-bluewaves-app/internal/apperr"
	"github.com/imamik/create-bluewaves-app/internal/config"
	"github.com/imamik/create-bluewaves-app/internal/logging"
	"github.com/imamik/create-bluewaves-app/internal/util/shell"
)

// userAgentEnv is set by npm-family managers for the processes they spawn,
// e.g. "pnpm/9.1.0 npm/? node/v20.11.0 darwin arm64".
const userAgentEnv = "npm_config_user_agent"

// lockfiles maps lockfile names to their package manager, in detection
// order.
var lockfiles = []struct {
	file string
	pm   config.PackageManager
}{
	{"pnpm-lock.yaml", config.PackageManagerPNPM},
	{"yarn.lock", config.PackageManagerYarn},
	{"package-lock.json", config.PackageManagerNPM},
	{"bun.lockb", config.PackageManagerBun},
}

var errNotDetected = errors.New("no lockfile or package manager user agent found")

// Prober inspects the host for package managers.
type Prober struct {
	// Dir is where lockfiles are looked for.
	Dir string

	LookPath func(file string) (string, error)
	Getenv   func(key string) string
	Runner   shell.Runner
	Log      logr.Logger
}

// NewProber creates a Prober for the current working directory and PATH.
func NewProber(runner shell.Runner, log logr.Logger) *Prober {
	dir, err := os.Getwd()
	if err != nil {
		logging.Debug(log).Info("cannot determine working directory, lockfile detection disabled", "error", err.Error())
		dir = ""
	}
	return &Prober{
		Dir:      dir,
		LookPath: exec.LookPath,
		Getenv:   os.Getenv,
		Runner:   runner,
		Log:      log,
	}
}

// Available returns every selectable package manager with its availability
// set.
func (p *Prober) Available() []Info {
	infos := Known()
	for i := range infos {
		_, err := p.LookPath(string(infos[i].Name))
		infos[i].Available = err == nil
	}
	return infos
}

// Resolve picks the package manager for this run. preferred may be empty.
func (p *Prober) Resolve(_ context.Context, preferred config.PackageManager) (Info, error) {
	infos := p.Available()

	if preferred != "" {
		if info, ok := pick(infos, preferred); ok {
			return info, nil
		}
		logging.Debug(p.Log).Info("preferred package manager not available", "packageManager", string(preferred))
	}

	detected, err := p.Detect()
	if err != nil {
		logging.Debug(p.Log).Info("package manager auto-detection failed", "error", err.Error())
	} else if info, ok := pick(infos, detected); ok {
		logging.Debug(p.Log).Info("auto-detected package manager", "packageManager", string(detected))
		return info, nil
	}

	for _, info := range infos {
		if info.Available {
			logging.Debug(p.Log).Info("using fallback package manager", "packageManager", string(info.Name))
			return info, nil
		}
	}

	return Info{}, apperr.New(apperr.NoPackageManager,
		"No package manager found. Please install npm, pnpm, or yarn.")
}

// Detect guesses the package manager from lockfiles in Dir, then from the
// npm user agent. The result may be a manager that is not selectable, such
// as bun.
func (p *Prober) Detect() (config.PackageManager, error) {
	if p.Dir != "" {
		for _, lf := range lockfiles {
			if _, err := os.Stat(filepath.Join(p.Dir, lf.file)); err == nil {
				return lf.pm, nil
			}
		}
	}

	if p.Getenv != nil {
		if ua := p.Getenv(userAgentEnv); ua != "" {
			name, _, _ := strings.Cut(ua, "/")
			if name != "" {
				return config.PackageManager(name), nil
			}
		}
	}

	return "", errNotDetected
}

// Version returns the version string reported by the package manager.
func (p *Prober) Version(ctx context.Context, name config.PackageManager) (string, error) {
	out, err := p.Runner.Output(ctx, shell.Command{Name: string(name), Args: []string{"--version"}})
	if err != nil {
		return "", apperr.Wrap(err, apperr.PackageManagerProbeFailed, "Failed to get %s version", name)
	}
	logging.Debug(p.Log).Info("package manager version", "packageManager", string(name), "version", out)
	return out, nil
}

func pick(infos []Info, name config.PackageManager) (Info, bool) {
	for _, info := range infos {
		if info.Name == name && info.Available {
			return info, true
		}
	}
	return Info{}, false
}
