package provisioning

import "fmt"

// InitialCommitMessage is the message of the first commit.
const InitialCommitMessage = "Initial commit: Bluewaves app with Surfer design system"

// InstallDependencies runs the package manager's install command in the
// project.
func InstallDependencies(ctx *Context) error {
	pm := ctx.PackageManager
	return ctx.run(string(pm.Name), pm.InstallArgs...)
}

// InitGit creates a repository and commits the generated project.
func InitGit(ctx *Context) error {
	commands := [][]string{
		{"init"},
		{"add", "."},
		{"commit", "-m", InitialCommitMessage},
	}
	for _, args := range commands {
		if err := ctx.run("git", args...); err != nil {
			return fmt.Errorf("git %s: %w", args[0], err)
		}
	}
	return nil
}
