package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/create-bluewaves-app/internal/config"
	"github.com/imamik/create-bluewaves-app/internal/config/wizard"
	"github.com/imamik/create-bluewaves-app/internal/ui/banner"
)

// Factory function variables for defaults - can be replaced in tests.
var (
	runDefaultsWizard = wizard.RunDefaultsWizard
	writeDefaults     = wizard.WriteDefaults
	loadDefaultsFile  = config.LoadDefaultsFile
)

// Defaults asks for the user defaults and writes them to the defaults file.
// With show set it prints the current file instead.
func Defaults(ctx context.Context, show bool) error {
	path, err := defaultsPath()
	if err != nil {
		return err
	}

	current, err := loadDefaultsFile(path)
	if err != nil {
		return err
	}

	if show {
		printDefaults(path, current)
		return nil
	}

	if !stdinIsTerminal() {
		return fmt.Errorf("the defaults wizard needs an interactive terminal, edit %s directly", path)
	}

	result, err := runDefaultsWizard(ctx, false, current)
	if err != nil {
		return err
	}

	if err := writeDefaults(result, path); err != nil {
		return fmt.Errorf("failed to write defaults: %w", err)
	}

	banner.Info(stdout, "Defaults saved to %s", path)
	return nil
}

func printDefaults(path string, d *config.Defaults) {
	_, _ = fmt.Fprintf(stdout, "Defaults file: %s\n", path)
	if !wizard.FileExists(path) {
		_, _ = fmt.Fprintln(stdout, "  (not present, built-in defaults apply)")
	}
	pm := d.PackageManager
	if pm == "" {
		pm = "auto-detect"
	}
	_, _ = fmt.Fprintf(stdout, "  template:        %s\n", d.Template)
	_, _ = fmt.Fprintf(stdout, "  package_manager: %s\n", pm)
	_, _ = fmt.Fprintf(stdout, "  skip_install:    %t\n", d.SkipInstall)
	_, _ = fmt.Fprintf(stdout, "  skip_git:        %t\n", d.SkipGit)
}
