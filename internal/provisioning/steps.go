package provisioning

import (
	"fmt"

	"github.com/imamik/create-bluewaves-app/internal/config"
)

// Step labels, shown in the progress view.
const (
	LabelScaffold     = "Creating Next.js application"
	LabelComponents   = "Installing shadcn/ui"
	LabelDesignSystem = "Installing Surfer design system"
	LabelInstall      = "Installing dependencies"
	LabelGit          = "Initializing git repository"
	LabelFinalTouches = "Final touches"
	labelTemplateFmt  = "Setting up %s template"
)

// TemplateLabel returns the label of the template step.
func TemplateLabel(t config.Template) string {
	return fmt.Sprintf(labelTemplateFmt, t)
}

// Steps returns the ordered steps that create the project described by cfg.
// The install and git steps are left out when skipped.
func Steps(cfg *config.ProvisioningConfig) []Step {
	steps := []Step{
		{Label: LabelScaffold, Action: CreateNextApp, AbortOnFailure: true},
		{Label: LabelComponents, Action: InstallComponents, AbortOnFailure: true},
		{Label: LabelDesignSystem, Action: InstallDesignSystem, AbortOnFailure: true},
		{Label: TemplateLabel(cfg.Template), Action: ApplyTemplate, AbortOnFailure: true},
	}

	if !cfg.SkipInstall {
		steps = append(steps, Step{Label: LabelInstall, Action: InstallDependencies, AbortOnFailure: true})
	}

	if !cfg.SkipGit {
		steps = append(steps, Step{Label: LabelGit, Action: InitGit, AbortOnFailure: false})
	}

	return append(steps, Step{Label: LabelFinalTouches, Action: WriteReadme, AbortOnFailure: true})
}

// Provision runs every step for ctx.Config.
func Provision(ctx *Context) error {
	return NewPipeline(Steps(ctx.Config)...).Run(ctx)
}
