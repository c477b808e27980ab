package packagemanager

import "github.com/imamik/create-bluewaves-app/internal/config"

// Runner is the invocation used to run a one-off package binary, such as
// create-next-app or shadcn.
type Runner struct {
	Command string
	Args    []string
}

// Invocation returns the full argument list for running pkg with args.
func (r Runner) Invocation(pkg string, args ...string) []string {
	out := make([]string, 0, len(r.Args)+1+len(args))
	out = append(out, r.Args...)
	out = append(out, pkg)
	return append(out, args...)
}

// ResolveRunner maps a package manager name to its one-off runner. Unknown
// names get the npx runner.
func ResolveRunner(name config.PackageManager) Runner {
	switch name {
	case config.PackageManagerPNPM:
		return Runner{Command: "pnpm", Args: []string{"dlx"}}
	case config.PackageManagerYarn:
		return Runner{Command: "yarn", Args: []string{"dlx"}}
	case config.PackageManagerBun:
		return Runner{Command: "bunx", Args: []string{"--bun"}}
	default:
		return Runner{Command: "npx", Args: []string{}}
	}
}

