package provisioning

import "path/filepath"

// NextAppPackage is the framework scaffolder.
const NextAppPackage = "create-next-app@latest"

// NextAppArgs returns the create-next-app arguments for a project called
// name that uses the package manager pm.
func NextAppArgs(name, pm string) []string {
	return []string{
		name,
		"--typescript",
		"--tailwind",
		"--eslint",
		"--app",
		"--src-dir",
		"--import-alias", "@/*",
		"--use-" + pm,
	}
}

// CreateNextApp scaffolds the base project. create-next-app creates the
// project directory itself, so it runs in the parent directory.
func CreateNextApp(ctx *Context) error {
	parent := filepath.Dir(ctx.Config.ProjectPath)
	return ctx.runTool(parent, NextAppPackage, NextAppArgs(ctx.Config.ProjectName, string(ctx.PackageManager.Name))...)
}
