package provisioning

import (
	"path/filepath"

	"github.com/imamik/create-bluewaves-app/internal/logging"
	"github.com/imamik/create-bluewaves-app/internal/templates"
)

// ApplyTemplate lays the template content over the scaffold. A template
// with its own tree is copied into src; any other template gets a
// synthesized page and layout.
func ApplyTemplate(ctx *Context) error {
	t := ctx.Config.Template
	src := filepath.Join(ctx.Config.ProjectPath, "src")

	if templates.HasTree(t) {
		written, err := templates.CopyTree(t, src)
		if err != nil {
			return err
		}
		logging.Debug(ctx.Log).Info("copied template tree", "template", string(t), "files", written)
		return nil
	}

	page, err := templates.Page(t)
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(src, "app", "page.tsx"), page); err != nil {
		return err
	}

	layout, err := templates.Layout()
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(src, "app", "layout.tsx"), layout)
}

// WriteReadme writes README.md with the package manager's commands.
func WriteReadme(ctx *Context) error {
	pm := ctx.PackageManager
	readme, err := templates.Readme(templates.ReadmeData{
		ProjectName:    ctx.Config.ProjectName,
		Template:       ctx.Config.Template,
		ComponentCount: len(CoreComponents),
		SkipInstall:    ctx.Config.SkipInstall,
		InstallCommand: pm.InstallCommand(),
		DevCommand:     pm.RunCommand("dev"),
		BuildCommand:   pm.RunCommand("build"),
		StartCommand:   pm.RunCommand("start"),
	})
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(ctx.Config.ProjectPath, "README.md"), readme)
}
