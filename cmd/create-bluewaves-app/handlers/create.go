// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"

	"github.com/imamik/create-bluewaves-app/internal/apperr"
	"github.com/imamik/create-bluewaves-app/internal/config"
	"github.com/imamik/create-bluewaves-app/internal/config/wizard"
	"github.com/imamik/create-bluewaves-app/internal/logging"
	"github.com/imamik/create-bluewaves-app/internal/packagemanager"
	"github.com/imamik/create-bluewaves-app/internal/provisioning"
	"github.com/imamik/create-bluewaves-app/internal/ui/banner"
	"github.com/imamik/create-bluewaves-app/internal/ui/tui"
	"github.com/imamik/create-bluewaves-app/internal/util/shell"
	"github.com/imamik/create-bluewaves-app/internal/validation"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	// stdinIsTerminal reports whether prompts can be shown.
	stdinIsTerminal = func() bool { return isTerminal(os.Stdin) }

	// stdoutIsTerminal reports whether the progress view can be drawn.
	stdoutIsTerminal = func() bool { return isTerminal(os.Stdout) }

	// newPrompter creates the interactive prompter.
	newPrompter = func() wizard.Prompter {
		return wizard.NewPrompter(os.Getenv("ACCESSIBLE") != "")
	}

	// newRunner creates the external process runner.
	newRunner = func(verbose bool) shell.Runner {
		return shell.NewExecRunner(verbose, stdout, stderr)
	}

	// newProber creates the package manager prober.
	newProber = packagemanager.NewProber

	// hostEnvironment describes the host for the environment check.
	hostEnvironment = validation.HostEnvironment

	// loadDefaults loads the user defaults file.
	loadDefaults = config.LoadDefaults

	// removeAll deletes an existing target directory.
	removeAll = os.RemoveAll

	// runWithTUI runs the pipeline behind the progress view.
	runWithTUI = func(ctx context.Context, projectName string, labels []string, run tui.RunFunc) error {
		return tui.RunProvisionTUI(ctx, projectName, labels, run)
	}
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Create resolves every input, then runs the provisioning pipeline.
//
// The flow is:
//  1. Resolve and validate the project name and target path
//  2. Ask for template and package manager on a terminal
//  3. Merge flags, answers and user defaults
//  4. Resolve the package manager against the host and probe its version
//  5. Check the Node.js runtime
//  6. Confirm removal of a non-empty target (or honour --force)
//  7. Run the steps, then print the success banner
//
// No file is touched before step 6.
func Create(ctx context.Context, args []string, opts config.Options) error {
	log := logging.New(stderr, opts.Verbose).WithName(config.AppName)
	interactive := stdinIsTerminal()

	defaults, err := loadDefaults()
	if err != nil {
		return err
	}

	var prompter wizard.Prompter
	if interactive {
		prompter = newPrompter()
		banner.Welcome(stdout)
	}

	name, err := projectName(ctx, args, prompter)
	if err != nil {
		return err
	}
	if err := validation.ValidateProjectName(name); err != nil {
		return err
	}

	projectPath, pathErr := validation.ValidateProjectPath(name)
	if pathErr != nil && !apperr.Is(pathErr, apperr.DirectoryNotEmpty) {
		return pathErr
	}

	runner := newRunner(opts.Verbose)
	prober := newProber(runner, log.WithName("prober"))

	answers, err := askChoices(ctx, opts, defaults, prober, prompter)
	if err != nil {
		return err
	}

	choices, err := config.Resolve(opts, answers, defaults)
	if err != nil {
		return err
	}

	pm, err := prober.Resolve(ctx, choices.PackageManager)
	if err != nil {
		return err
	}
	if choices.PackageManager != "" && pm.Name != choices.PackageManager {
		banner.Warning(stderr, "%s is not installed, using %s instead", choices.PackageManager, pm.Name)
	}
	if _, err := prober.Version(ctx, pm.Name); err != nil {
		return err
	}

	warnings, err := validation.ValidateEnvironment(ctx, hostEnvironment(runner))
	if err != nil {
		return err
	}
	for _, w := range warnings {
		banner.Warning(stderr, "%s", w)
	}

	cfg, err := config.New(name, projectPath, choices, pm.Name, opts.Verbose)
	if err != nil {
		return err
	}

	if pathErr != nil {
		proceed, err := clearTarget(ctx, cfg, opts.Force, prompter, pathErr, log)
		if err != nil {
			return err
		}
		if !proceed {
			banner.Cancelled(stdout)
			return nil
		}
	}

	start := time.Now()
	if err := provision(ctx, cfg, pm, runner, log, interactive && stdoutIsTerminal() && !opts.Verbose); err != nil {
		return err
	}

	banner.Success(stdout, banner.Summary{
		Config:         cfg,
		PackageManager: pm,
		ComponentCount: len(provisioning.CoreComponents),
		Duration:       time.Since(start),
	})
	return nil
}

// projectName returns the name from the arguments or asks for it.
func projectName(ctx context.Context, args []string, prompter wizard.Prompter) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if prompter == nil {
		return "", apperr.New(apperr.InvalidProjectName, "Project name is required")
	}
	return prompter.ProjectName(ctx, wizard.DefaultProjectName)
}

// askChoices prompts for the values not given as flags. Nothing is asked
// without a prompter.
func askChoices(
	ctx context.Context,
	opts config.Options,
	defaults *config.Defaults,
	prober *packagemanager.Prober,
	prompter wizard.Prompter,
) (config.Answers, error) {
	var answers config.Answers
	if prompter == nil {
		return answers, nil
	}

	if !opts.TemplateSet {
		tmpl, err := prompter.Template(ctx, config.Template(defaults.Template))
		if err != nil {
			return answers, err
		}
		answers.Template = tmpl
	}

	if opts.PackageManagerFlag() == "" {
		pm, err := prompter.PackageManager(ctx, suggestedPackageManager(defaults, prober))
		if err != nil {
			return answers, err
		}
		answers.PackageManager = pm
	}

	return answers, nil
}

// suggestedPackageManager preselects the defaults file value, then the
// auto-detected manager, then the recommended one.
func suggestedPackageManager(defaults *config.Defaults, prober *packagemanager.Prober) config.PackageManager {
	if pm := config.PackageManager(defaults.PackageManager); pm.IsValid() {
		return pm
	}
	if detected, err := prober.Detect(); err == nil && detected.IsValid() {
		return detected
	}
	return wizard.RecommendedPackageManager
}

// clearTarget removes a non-empty target after confirmation. It reports
// false when the operator declined.
func clearTarget(
	ctx context.Context,
	cfg *config.ProvisioningConfig,
	force bool,
	prompter wizard.Prompter,
	pathErr error,
	log logr.Logger,
) (bool, error) {
	if !force {
		if prompter == nil {
			return false, pathErr
		}
		confirmed, err := prompter.ConfirmOverwrite(ctx, cfg.ProjectName)
		if err != nil {
			return false, err
		}
		if !confirmed {
			return false, nil
		}
	}

	logging.Debug(log).Info("removing existing directory", "path", cfg.ProjectPath)
	if err := removeAll(cfg.ProjectPath); err != nil {
		return false, apperr.Wrap(err, apperr.PermissionDenied, "Cannot remove directory: %s", cfg.ProjectPath)
	}
	return true, nil
}

// provision runs the steps behind the progress view or with one line per
// event.
func provision(
	ctx context.Context,
	cfg *config.ProvisioningConfig,
	pm packagemanager.Info,
	runner shell.Runner,
	log logr.Logger,
	useTUI bool,
) error {
	pctx := provisioning.NewContext(ctx, cfg, pm, runner, log)
	pipeline := provisioning.NewPipeline(provisioning.Steps(cfg)...)

	if useTUI {
		return runWithTUI(ctx, cfg.ProjectName, pipeline.Labels(), func(runCtx context.Context, observer provisioning.Observer) error {
			pctx.Context = runCtx
			pctx.Observer = observer
			return pipeline.Run(pctx)
		})
	}

	banner.Plan(stdout, cfg)
	console := provisioning.NewConsoleObserver(stdout)
	console.ShowWarnings = cfg.Verbose
	pctx.Observer = console
	return pipeline.Run(pctx)
}
