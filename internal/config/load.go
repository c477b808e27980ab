package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// AppName is used for the defaults file location.
const AppName = "create-bluewaves-app"

// DefaultsFilename is the name of the user defaults file.
const DefaultsFilename = "config.yaml"

// Defaults are user-level preferences read from the defaults file. They rank
// below flags and interactive answers.
type Defaults struct {
	Template       string `yaml:"template,omitempty"`
	PackageManager string `yaml:"package_manager,omitempty"`
	SkipInstall    bool   `yaml:"skip_install,omitempty"`
	SkipGit        bool   `yaml:"skip_git,omitempty"`
}

// BuiltinDefaults returns the defaults used when no file exists.
func BuiltinDefaults() *Defaults {
	return &Defaults{Template: string(TemplateMinimal)}
}

// DefaultsPath returns the location of the user defaults file under the XDG
// config home.
func DefaultsPath() (string, error) {
	if xdg.ConfigHome == "" {
		return "", errors.New("failed to locate user config directory")
	}
	return filepath.Join(xdg.ConfigHome, AppName, DefaultsFilename), nil
}

// LoadDefaults loads the user defaults file. A missing file yields the
// built-in defaults.
func LoadDefaults() (*Defaults, error) {
	path, err := DefaultsPath()
	if err != nil {
		return BuiltinDefaults(), nil //nolint:nilerr // no config dir means no user defaults
	}
	return LoadDefaultsFile(path)
}

// LoadDefaultsFile loads and validates defaults from path, layered over the
// built-in defaults. A missing file is not an error.
func LoadDefaultsFile(path string) (*Defaults, error) {
	defaults := BuiltinDefaults()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read defaults file: %w", err)
	}

	if err := yaml.Unmarshal(data, defaults); err != nil {
		return nil, fmt.Errorf("failed to parse defaults file %s: %w", path, err)
	}

	if err := defaults.Validate(); err != nil {
		return nil, fmt.Errorf("invalid defaults file %s: %w", path, err)
	}

	return defaults, nil
}

// Validate checks the enumerated values in the defaults.
func (d *Defaults) Validate() error {
	if d.Template != "" {
		if _, err := ParseTemplate(d.Template); err != nil {
			return err
		}
	}
	if d.PackageManager != "" {
		if _, err := ParsePackageManager(d.PackageManager); err != nil {
			return err
		}
	}
	return nil
}
