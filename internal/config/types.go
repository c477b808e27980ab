package config

import (
	"strings"

	"github.com/imamik/create-bluewaves-app/internal/apperr"
)

// Template is a named preset of content laid over the base scaffold.
type Template string

const (
	// TemplateMinimal is a clean setup with the core components.
	TemplateMinimal Template = "minimal"
	// TemplateDashboard is an admin interface with charts and tables.
	TemplateDashboard Template = "dashboard"
	// TemplateSaaS is a complete SaaS application starting point.
	TemplateSaaS Template = "saas"
	// TemplateEcommerce is an online store with product management.
	TemplateEcommerce Template = "ecommerce"
	// TemplateLanding is a marketing site focused on conversion.
	TemplateLanding Template = "landing"
)

// Templates returns all valid templates in display order.
func Templates() []Template {
	return []Template{TemplateMinimal, TemplateDashboard, TemplateSaaS, TemplateEcommerce, TemplateLanding}
}

// IsValid returns true if the template is one of the known presets.
func (t Template) IsValid() bool {
	switch t {
	case TemplateMinimal, TemplateDashboard, TemplateSaaS, TemplateEcommerce, TemplateLanding:
		return true
	default:
		return false
	}
}

// Description returns the one-line summary shown in the template picker.
func (t Template) Description() string {
	switch t {
	case TemplateMinimal:
		return "Minimal - Clean setup with core components"
	case TemplateDashboard:
		return "Dashboard - Admin interface with charts and tables"
	case TemplateSaaS:
		return "SaaS - Complete SaaS application template"
	case TemplateEcommerce:
		return "E-commerce - Online store with product management"
	case TemplateLanding:
		return "Landing Page - Marketing site with conversion focus"
	default:
		return string(t)
	}
}

// ParseTemplate converts s into a Template. Matching is exact and
// case-sensitive.
func ParseTemplate(s string) (Template, error) {
	t := Template(s)
	if !t.IsValid() {
		return "", apperr.New(apperr.InvalidTemplate,
			"Invalid template: %s. Valid templates are: %s", s, joinTemplates(Templates()))
	}
	return t, nil
}

func joinTemplates(ts []Template) string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// PackageManager is an npm-family package manager.
type PackageManager string

const (
	// PackageManagerNPM is npm.
	PackageManagerNPM PackageManager = "npm"
	// PackageManagerPNPM is pnpm.
	PackageManagerPNPM PackageManager = "pnpm"
	// PackageManagerYarn is yarn.
	PackageManagerYarn PackageManager = "yarn"
	// PackageManagerBun is bun. It is only known to runner resolution and is
	// rejected as a user choice.
	PackageManagerBun PackageManager = "bun"
)

// PackageManagers returns the package managers a user may choose, in probe
// order.
func PackageManagers() []PackageManager {
	return []PackageManager{PackageManagerNPM, PackageManagerPNPM, PackageManagerYarn}
}

// IsValid returns true if the package manager is a supported user choice.
func (p PackageManager) IsValid() bool {
	switch p {
	case PackageManagerNPM, PackageManagerPNPM, PackageManagerYarn:
		return true
	default:
		return false
	}
}

// ParsePackageManager converts s into a PackageManager.
func ParsePackageManager(s string) (PackageManager, error) {
	p := PackageManager(s)
	if !p.IsValid() {
		names := make([]string, 0, len(PackageManagers()))
		for _, pm := range PackageManagers() {
			names = append(names, string(pm))
		}
		return "", apperr.New(apperr.InvalidPackageManager,
			"Invalid package manager: %s. Valid options are: %s", s, strings.Join(names, ", "))
	}
	return p, nil
}
