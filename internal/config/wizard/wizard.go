package wizard

import (
	"context"
	"fmt"

	"github.com/imamik/create-bluewaves-app/internal/config"
)

// Prompter asks the interactive questions of a create run.
type Prompter interface {
	// ProjectName asks for the project name, pre-filled with def.
	ProjectName(ctx context.Context, def string) (string, error)

	// Template asks for the template, preselecting def.
	Template(ctx context.Context, def config.Template) (config.Template, error)

	// PackageManager asks for the package manager, preselecting def or the
	// recommended manager when def is empty.
	PackageManager(ctx context.Context, def config.PackageManager) (config.PackageManager, error)

	// ConfirmOverwrite asks whether the non-empty directory may be removed.
	ConfirmOverwrite(ctx context.Context, dir string) (bool, error)
}

// HuhPrompter is the terminal Prompter backed by huh forms.
type HuhPrompter struct {
	// Accessible switches huh to its line-based accessible mode.
	Accessible bool
}

// NewPrompter returns a terminal prompter.
func NewPrompter(accessible bool) *HuhPrompter {
	return &HuhPrompter{Accessible: accessible}
}

// ProjectName implements Prompter.
func (p *HuhPrompter) ProjectName(ctx context.Context, def string) (string, error) {
	if def == "" {
		def = DefaultProjectName
	}
	return askProjectName(ctx, p.Accessible, def)
}

// Template implements Prompter.
func (p *HuhPrompter) Template(ctx context.Context, def config.Template) (config.Template, error) {
	return askTemplate(ctx, p.Accessible, def)
}

// PackageManager implements Prompter.
func (p *HuhPrompter) PackageManager(ctx context.Context, def config.PackageManager) (config.PackageManager, error) {
	return askPackageManager(ctx, p.Accessible, def)
}

// ConfirmOverwrite implements Prompter.
func (p *HuhPrompter) ConfirmOverwrite(ctx context.Context, dir string) (bool, error) {
	return askConfirmOverwrite(ctx, p.Accessible, dir)
}

// RunDefaultsWizard asks for every value of the user defaults file,
// starting from current.
func RunDefaultsWizard(ctx context.Context, accessible bool, current *config.Defaults) (*config.Defaults, error) {
	if current == nil {
		current = config.BuiltinDefaults()
	}
	result := *current

	tmpl, err := askTemplate(ctx, accessible, config.Template(result.Template))
	if err != nil {
		return nil, err
	}
	result.Template = string(tmpl)

	pm, err := askPackageManager(ctx, accessible, config.PackageManager(result.PackageManager))
	if err != nil {
		return nil, err
	}
	result.PackageManager = string(pm)

	if err := askSkips(ctx, accessible, &result.SkipInstall, &result.SkipGit); err != nil {
		return nil, fmt.Errorf("skip options: %w", err)
	}

	return &result, nil
}
