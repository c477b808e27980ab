package provisioning

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/imamik/create-bluewaves-app/internal/config"
	"github.com/imamik/create-bluewaves-app/internal/templates"
)

// Dependency is a package.json dependency entry.
type Dependency struct {
	Name    string
	Version string
}

// DesignSystemDependencies are added to every generated project.
var DesignSystemDependencies = []Dependency{
	{Name: "@bluewaves/surfer", Version: "^1.0.0"},
	{Name: "framer-motion", Version: "^11.0.0"},
	{Name: "next-themes", Version: "^0.4.6"},
	{Name: "sonner", Version: "^2.0.6"},
	{Name: "zod", Version: "^4.0.5"},
}

// SurferConfigFile is the metadata file recording how the project was made.
const SurferConfigFile = "surfer.config.json"

// SurferConfig is the content of surfer.config.json.
type SurferConfig struct {
	Version        string               `json:"version"`
	Template       config.Template      `json:"template"`
	NextJS         SurferNextJS         `json:"nextjs"`
	Customizations SurferCustomizations `json:"customizations"`
}

// SurferNextJS records the framework assumptions of the template.
type SurferNextJS struct {
	Version   string `json:"version"`
	AppRouter bool   `json:"appRouter"`
}

// SurferCustomizations holds user overrides of the design tokens.
type SurferCustomizations struct {
	Colors     map[string]string `json:"colors"`
	Fonts      map[string]string `json:"fonts"`
	Components map[string]string `json:"components"`
}

// NewSurferConfig returns the metadata for a freshly created project.
func NewSurferConfig(t config.Template) SurferConfig {
	return SurferConfig{
		Version:  "1.0.0",
		Template: t,
		NextJS:   SurferNextJS{Version: "15.x", AppRouter: true},
		Customizations: SurferCustomizations{
			Colors:     map[string]string{},
			Fonts:      map[string]string{},
			Components: map[string]string{},
		},
	}
}

// InstallDesignSystem declares the Surfer dependencies, points Tailwind and
// the global stylesheet at Surfer and writes surfer.config.json.
func InstallDesignSystem(ctx *Context) error {
	dir := ctx.Config.ProjectPath

	manifest := filepath.Join(dir, "package.json")
	data, err := os.ReadFile(manifest)
	if err != nil {
		return fmt.Errorf("failed to read package.json: %w", err)
	}
	merged, err := MergeDependencies(data, DesignSystemDependencies)
	if err != nil {
		return err
	}
	if err := writeFile(manifest, merged); err != nil {
		return err
	}

	tailwind, err := templates.TailwindConfig()
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, "tailwind.config.ts"), tailwind); err != nil {
		return err
	}

	css, err := templates.GlobalsCSS()
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, "src", "app", "globals.css"), css); err != nil {
		return err
	}

	surfer, err := json.MarshalIndent(NewSurferConfig(ctx.Config.Template), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", SurferConfigFile, err)
	}
	return writeFile(filepath.Join(dir, SurferConfigFile), append(surfer, '\n'))
}

// MergeDependencies adds deps to the dependencies object of a package.json
// document. Existing entries keep their position; an entry with the same
// name is updated in place. Every other key is left untouched.
func MergeDependencies(manifest []byte, deps []Dependency) ([]byte, error) {
	if !gjson.ValidBytes(manifest) {
		return nil, errors.New("package.json is not valid JSON")
	}

	versions := make(map[string]string, len(deps))
	for _, d := range deps {
		versions[d.Name] = d.Version
	}

	current := gjson.GetBytes(manifest, "dependencies")
	if current.Exists() && current.Type != gjson.Null && !current.IsObject() {
		return nil, errors.New("package.json dependencies is not an object")
	}

	var entries []string
	seen := make(map[string]bool, len(deps))
	if current.IsObject() {
		current.ForEach(func(key, value gjson.Result) bool {
			raw := value.Raw
			if v, ok := versions[key.String()]; ok {
				raw = quote(v)
				seen[key.String()] = true
			}
			entries = append(entries, quote(key.String())+":"+raw)
			return true
		})
	}

	for _, d := range deps {
		if !seen[d.Name] {
			entries = append(entries, quote(d.Name)+":"+quote(d.Version))
		}
	}

	out, err := sjson.SetRawBytes(manifest, "dependencies", []byte("{"+strings.Join(entries, ",")+"}"))
	if err != nil {
		return nil, fmt.Errorf("failed to update dependencies: %w", err)
	}
	return pretty.PrettyOptions(out, &pretty.Options{Width: 80, Indent: "  "}), nil
}

// quote encodes s as a JSON string.
func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func writeFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
