package testing

import (
	"github.com/imamik/create-bluewaves-app/internal/config"
)

// ConfigBuilder provides a fluent interface for constructing test configs.
// Each method returns a new builder (immutable) for chaining.
type ConfigBuilder struct {
	cfg config.ProvisioningConfig
}

// NewConfigBuilder creates a new ConfigBuilder with sensible defaults.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: config.ProvisioningConfig{
			ProjectName:    "test-app",
			ProjectPath:    "/tmp/test-app",
			Template:       config.TemplateMinimal,
			PackageManager: config.PackageManagerPNPM,
		},
	}
}

func (b *ConfigBuilder) clone() *ConfigBuilder {
	return &ConfigBuilder{cfg: b.cfg}
}

// WithProject sets the project name and absolute path.
func (b *ConfigBuilder) WithProject(name, path string) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.ProjectName = name
	nb.cfg.ProjectPath = path
	return nb
}

// WithTemplate sets the template.
func (b *ConfigBuilder) WithTemplate(t config.Template) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.Template = t
	return nb
}

// WithPackageManager sets the package manager.
func (b *ConfigBuilder) WithPackageManager(pm config.PackageManager) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.PackageManager = pm
	return nb
}

// WithSkipInstall sets SkipInstall.
func (b *ConfigBuilder) WithSkipInstall(skip bool) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.SkipInstall = skip
	return nb
}

// WithSkipGit sets SkipGit.
func (b *ConfigBuilder) WithSkipGit(skip bool) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.SkipGit = skip
	return nb
}

// WithVerbose sets Verbose.
func (b *ConfigBuilder) WithVerbose(verbose bool) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.Verbose = verbose
	return nb
}

// Build returns a copy of the configuration.
func (b *ConfigBuilder) Build() *config.ProvisioningConfig {
	cfg := b.cfg
	return &cfg
}
