package provisioning

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// ShadcnPackage is the UI-component installer.
const ShadcnPackage = "shadcn@latest"

// ComponentBatchSize bounds how many components one add invocation installs.
const ComponentBatchSize = 5

// CoreComponents are the shadcn/ui components every project gets.
var CoreComponents = []string{
	"button", "card", "input", "label", "badge",
	"avatar", "dropdown-menu", "navigation-menu", "sheet", "toast",
	"dialog", "select", "switch", "tabs", "tooltip",
	"accordion", "alert", "checkbox", "form", "popover",
	"progress", "radio-group", "separator", "slider", "table",
	"textarea",
}

// ErrManifestMissing is returned when a step needs package.json and the
// scaffold did not produce one.
var ErrManifestMissing = errors.New("package.json not found")

// InstallComponents initializes shadcn/ui and adds the core components in
// batches.
func InstallComponents(ctx *Context) error {
	if err := requireManifest(ctx.Config.ProjectPath); err != nil {
		return err
	}

	dir := ctx.Config.ProjectPath
	if err := ctx.runTool(dir, ShadcnPackage, "init", "--yes", "--style", "new-york"); err != nil {
		return fmt.Errorf("shadcn init: %w", err)
	}

	for _, batch := range Batches(CoreComponents, ComponentBatchSize) {
		args := append([]string{"add"}, batch...)
		args = append(args, "--yes")
		if err := ctx.runTool(dir, ShadcnPackage, args...); err != nil {
			return fmt.Errorf("shadcn add %v: %w", batch, err)
		}
	}
	return nil
}

// Batches splits items into consecutive groups of at most size elements.
func Batches(items []string, size int) [][]string {
	if size <= 0 {
		return [][]string{slices.Clone(items)}
	}
	var out [][]string
	for chunk := range slices.Chunk(items, size) {
		out = append(out, slices.Clone(chunk))
	}
	return out
}

func requireManifest(projectPath string) error {
	_, err := os.Stat(filepath.Join(projectPath, "package.json"))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w in %s", ErrManifestMissing, projectPath)
	}
	return err
}
