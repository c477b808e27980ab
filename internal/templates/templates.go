package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"text/template"

	"github.com/imamik/create-bluewaves-app/internal/config"
)

//go:embed all:files
var filesFS embed.FS

const (
	tailwindConfigFile = "files/surfer/tailwind.config.ts"
	globalsCSSFile     = "files/surfer/globals.css"
	layoutFile         = "files/app/layout.tsx"
	pageTemplateFile   = "files/app/page.tsx.tmpl"
	readmeTemplateFile = "files/README.md.tmpl"
	treesDir           = "files/trees"
)

// TailwindConfig returns tailwind.config.ts wired to the Surfer preset.
func TailwindConfig() ([]byte, error) {
	return readFile(tailwindConfigFile)
}

// GlobalsCSS returns the global stylesheet importing the Surfer styles.
func GlobalsCSS() ([]byte, error) {
	return readFile(globalsCSSFile)
}

// Layout returns the root layout with the theme provider and toaster.
func Layout() ([]byte, error) {
	return readFile(layoutFile)
}

// PageData is the input of the synthesized landing page.
type PageData struct {
	Template config.Template
	Cards    []Card
}

// Page renders src/app/page.tsx for a template without its own tree.
func Page(t config.Template) ([]byte, error) {
	return render(pageTemplateFile, PageData{Template: t, Cards: CardsFor(t)})
}

// ReadmeData is the input of the generated README.
type ReadmeData struct {
	ProjectName    string
	Template       config.Template
	ComponentCount int
	SkipInstall    bool
	InstallCommand string
	DevCommand     string
	BuildCommand   string
	StartCommand   string
}

// Readme renders README.md.
func Readme(data ReadmeData) ([]byte, error) {
	return render(readmeTemplateFile, data)
}

// HasTree reports whether t ships its own source tree.
func HasTree(t config.Template) bool {
	info, err := fs.Stat(filesFS, path.Join(treesDir, string(t)))
	return err == nil && info.IsDir()
}

// CopyTree copies the source tree of t into dst, creating directories as
// needed and overwriting existing files. It returns the relative paths it
// wrote.
func CopyTree(t config.Template, dst string) ([]string, error) {
	tree, err := fs.Sub(filesFS, path.Join(treesDir, string(t)))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s template: %w", t, err)
	}

	var written []string
	err = fs.WalkDir(tree, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(p))

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		content, err := fs.ReadFile(tree, p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, content, 0o644); err != nil {
			return err
		}
		written = append(written, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to copy %s template: %w", t, err)
	}
	return written, nil
}

func readFile(name string) ([]byte, error) {
	content, err := filesFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file %s: %w", name, err)
	}
	return content, nil
}

func render(name string, data any) ([]byte, error) {
	content, err := readFile(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(path.Base(name)).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
