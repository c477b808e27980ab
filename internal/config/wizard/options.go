package wizard

import (
	"github.com/charmbracelet/huh"

	"github.com/imamik/create-bluewaves-app/internal/config"
)

// DefaultProjectName pre-fills the project name prompt.
const DefaultProjectName = "my-bluewaves-app"

// RecommendedPackageManager is offered first and labelled as recommended.
const RecommendedPackageManager = config.PackageManagerPNPM

// TemplateOptions returns one option per template, labelled with its
// description. The option matching selected is preselected.
func TemplateOptions(selected config.Template) []huh.Option[config.Template] {
	templates := config.Templates()
	opts := make([]huh.Option[config.Template], 0, len(templates))
	for _, t := range templates {
		label := string(t) + " - " + t.Description()
		opts = append(opts, huh.NewOption(label, t).Selected(t == selected))
	}
	return opts
}

// PackageManagerOptions returns the selectable package managers with the
// recommended one first.
func PackageManagerOptions(selected config.PackageManager) []huh.Option[config.PackageManager] {
	order := []config.PackageManager{
		config.PackageManagerPNPM,
		config.PackageManagerNPM,
		config.PackageManagerYarn,
	}
	opts := make([]huh.Option[config.PackageManager], 0, len(order))
	for _, pm := range order {
		label := string(pm)
		if pm == RecommendedPackageManager {
			label += " (recommended)"
		}
		opts = append(opts, huh.NewOption(label, pm).Selected(pm == selected))
	}
	return opts
}
