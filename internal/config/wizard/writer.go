package wizard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/imamik/create-bluewaves-app/internal/config"
)

// WriteDefaults writes the user defaults file with a descriptive header.
func WriteDefaults(d *config.Defaults, path string) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("invalid defaults: %w", err)
	}

	yamlBytes, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal defaults: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader(path))
	sb.WriteString("\n")
	sb.Write(yamlBytes)

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func generateHeader(path string) string {
	return fmt.Sprintf(`# create-bluewaves-app defaults
# Generated by: create-bluewaves-app defaults
# Generated at: %s
#
# Command-line flags and interactive answers take precedence over these
# values. Delete %s to return to the built-in defaults.
`, time.Now().Format(time.RFC3339), path)
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
