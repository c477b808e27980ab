package config

import "fmt"

// ProvisioningConfig is the fully resolved, validated input of one run.
type ProvisioningConfig struct {
	// ProjectName is the validated package name, also the directory name.
	ProjectName string

	// ProjectPath is the absolute target directory.
	ProjectPath string

	Template       Template
	PackageManager PackageManager

	SkipInstall bool
	SkipGit     bool
	Verbose     bool
}

// Options holds the raw command-line values.
type Options struct {
	Template string
	// TemplateSet reports whether --template was given explicitly.
	TemplateSet bool

	PackageManager string
	UseNPM         bool
	UsePNPM        bool
	UseYarn        bool

	SkipInstall bool
	SkipGit     bool
	Force       bool
	Verbose     bool
}

// PackageManagerFlag returns the package manager selected on the command
// line, or "" when none was selected. The explicit --package-manager value
// wins over the shorthand flags.
func (o Options) PackageManagerFlag() string {
	switch {
	case o.PackageManager != "":
		return o.PackageManager
	case o.UseNPM:
		return string(PackageManagerNPM)
	case o.UsePNPM:
		return string(PackageManagerPNPM)
	case o.UseYarn:
		return string(PackageManagerYarn)
	default:
		return ""
	}
}

// Answers holds the interactive answers. Zero values mean "not asked".
type Answers struct {
	Template       Template
	PackageManager PackageManager
}

// Choices are the resolved user choices before the package manager has been
// checked against the host.
type Choices struct {
	Template Template
	// PackageManager is the preferred manager; "" means auto-detect.
	PackageManager PackageManager
	SkipInstall    bool
	SkipGit        bool
}

// Resolve merges flags, answers and defaults, in that order of precedence,
// and validates every enumerated value.
func Resolve(opts Options, answers Answers, defaults *Defaults) (Choices, error) {
	if defaults == nil {
		defaults = BuiltinDefaults()
	}

	var choices Choices

	templateName := string(TemplateMinimal)
	if defaults.Template != "" {
		templateName = defaults.Template
	}
	if answers.Template != "" {
		templateName = string(answers.Template)
	}
	if opts.TemplateSet {
		templateName = opts.Template
	}

	tmpl, err := ParseTemplate(templateName)
	if err != nil {
		return Choices{}, err
	}
	choices.Template = tmpl

	pmName := defaults.PackageManager
	if answers.PackageManager != "" {
		pmName = string(answers.PackageManager)
	}
	if flag := opts.PackageManagerFlag(); flag != "" {
		pmName = flag
	}
	if pmName != "" {
		pm, err := ParsePackageManager(pmName)
		if err != nil {
			return Choices{}, err
		}
		choices.PackageManager = pm
	}

	choices.SkipInstall = opts.SkipInstall || defaults.SkipInstall
	choices.SkipGit = opts.SkipGit || defaults.SkipGit

	return choices, nil
}

// New builds the final configuration once the package manager has been
// resolved against the host.
func New(name, path string, choices Choices, pm PackageManager, verbose bool) (*ProvisioningConfig, error) {
	if !pm.IsValid() {
		return nil, fmt.Errorf("unsupported package manager %q", pm)
	}
	return &ProvisioningConfig{
		ProjectName:    name,
		ProjectPath:    path,
		Template:       choices.Template,
		PackageManager: pm,
		SkipInstall:    choices.SkipInstall,
		SkipGit:        choices.SkipGit,
		Verbose:        verbose,
	}, nil
}
