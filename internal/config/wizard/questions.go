package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/imamik/create-bluewaves-app/internal/config"
	"github.com/imamik/create-bluewaves-app/internal/validation"
)

// Function variable for dependency injection in tests.
var runForm = func(ctx context.Context, form *huh.Form) error {
	return form.RunWithContext(ctx)
}

func run(ctx context.Context, accessible bool, fields ...huh.Field) error {
	form := huh.NewForm(huh.NewGroup(fields...)).WithAccessible(accessible)
	if err := runForm(ctx, form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return err
	}
	return nil
}

// askProjectName prompts for the project name, pre-filled with def.
func askProjectName(ctx context.Context, accessible bool, def string) (string, error) {
	name := def
	err := run(ctx, accessible,
		huh.NewInput().
			Title("What is your project named?").
			Description("Lowercase letters, digits, '.', '_' and '-'").
			Placeholder(DefaultProjectName).
			Value(&name).
			Validate(validateProjectName),
	)
	if err != nil {
		return "", fmt.Errorf("project name: %w", err)
	}
	return name, nil
}

// askTemplate prompts for the template.
func askTemplate(ctx context.Context, accessible bool, def config.Template) (config.Template, error) {
	if def == "" {
		def = config.TemplateMinimal
	}
	selected := def
	err := run(ctx, accessible,
		huh.NewSelect[config.Template]().
			Title("Which template would you like to use?").
			Options(TemplateOptions(def)...).
			Value(&selected),
	)
	if err != nil {
		return "", fmt.Errorf("template: %w", err)
	}
	return selected, nil
}

// askPackageManager prompts for the package manager.
func askPackageManager(ctx context.Context, accessible bool, def config.PackageManager) (config.PackageManager, error) {
	if def == "" {
		def = RecommendedPackageManager
	}
	selected := def
	err := run(ctx, accessible,
		huh.NewSelect[config.PackageManager]().
			Title("Which package manager would you like to use?").
			Options(PackageManagerOptions(def)...).
			Value(&selected),
	)
	if err != nil {
		return "", fmt.Errorf("package manager: %w", err)
	}
	return selected, nil
}

// askConfirmOverwrite asks before a non-empty directory is removed. The
// default answer is no.
func askConfirmOverwrite(ctx context.Context, accessible bool, dir string) (bool, error) {
	var confirmed bool
	err := run(ctx, accessible,
		huh.NewConfirm().
			Title(fmt.Sprintf("Directory %s already exists. Do you want to overwrite it?", dir)).
			Description("Everything in the directory will be deleted.").
			Affirmative("Yes, overwrite").
			Negative("No").
			Value(&confirmed),
	)
	if err != nil {
		return false, fmt.Errorf("confirm overwrite: %w", err)
	}
	return confirmed, nil
}

// askSkips prompts for the skip flags stored in the defaults file.
func askSkips(ctx context.Context, accessible bool, skipInstall, skipGit *bool) error {
	return run(ctx, accessible,
		huh.NewConfirm().
			Title("Skip installing dependencies by default?").
			Value(skipInstall),
		huh.NewConfirm().
			Title("Skip git initialization by default?").
			Value(skipGit),
	)
}

func validateProjectName(name string) error {
	return validation.ValidateProjectName(name)
}
