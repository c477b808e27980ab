package validation

import (
	"context"
	"os/exec"

	"github.com/Masterminds/semver/v3"

	"github.com/imamik/create-bluewaves-app/internal/apperr"
	"github.com/imamik/create-bluewaves-app/internal/util/shell"
)

// MinNodeVersion is the oldest Node.js release the generated project
// supports.
const MinNodeVersion = "18.0.0"

// GitMissingWarning is returned by ValidateEnvironment when git is absent.
const GitMissingWarning = "Git not found. Git repository initialization will be skipped."

// Environment gives the environment check access to the host.
type Environment struct {
	Runner   shell.Runner
	LookPath func(file string) (string, error)
}

// HostEnvironment returns an Environment backed by runner and the real PATH.
func HostEnvironment(runner shell.Runner) Environment {
	return Environment{Runner: runner, LookPath: exec.LookPath}
}

// ValidateEnvironment checks the Node.js version on the host. A missing git
// does not fail the check; it is reported in the returned warnings.
func ValidateEnvironment(ctx context.Context, env Environment) ([]string, error) {
	if _, err := env.LookPath("node"); err != nil {
		return nil, apperr.Wrap(err, apperr.UnsupportedRuntimeVersion,
			"Node.js %s or higher is required, but node was not found", MinNodeVersion)
	}

	out, err := env.Runner.Output(ctx, shell.Command{Name: "node", Args: []string{"--version"}})
	if err != nil {
		return nil, apperr.Wrap(err, apperr.UnsupportedRuntimeVersion,
			"Node.js %s or higher is required, but its version could not be determined", MinNodeVersion)
	}

	if err := CheckNodeVersion(out); err != nil {
		return nil, err
	}

	var warnings []string
	if _, err := env.LookPath("git"); err != nil {
		warnings = append(warnings, GitMissingWarning)
	}
	return warnings, nil
}

// CheckNodeVersion checks a `node --version` output such as "v20.11.0"
// against MinNodeVersion.
func CheckNodeVersion(out string) error {
	current, err := semver.NewVersion(out)
	if err != nil {
		return apperr.Wrap(err, apperr.UnsupportedRuntimeVersion,
			"Node.js %s or higher is required, but the version %q is not recognized", MinNodeVersion, out)
	}

	if current.LessThan(semver.MustParse(MinNodeVersion)) {
		return apperr.New(apperr.UnsupportedRuntimeVersion,
			"Node.js %s or higher is required. You are using %s", MinNodeVersion, out)
	}
	return nil
}
