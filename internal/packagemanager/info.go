package packagemanager

import "github.com/imamik/create-bluewaves-app/internal/config"

// Info describes how to drive one package manager.
type Info struct {
	Name        config.PackageManager
	InstallArgs []string
	Available   bool

	runScript func(script string) []string
}

// RunArgs returns the arguments that run a package.json script.
func (i Info) RunArgs(script string) []string {
	if i.runScript == nil {
		return []string{"run", script}
	}
	return i.runScript(script)
}

// RunCommand renders the command line that runs a package.json script.
func (i Info) RunCommand(script string) string {
	line := string(i.Name)
	for _, arg := range i.RunArgs(script) {
		line += " " + arg
	}
	return line
}

// InstallCommand renders the command line that installs dependencies.
func (i Info) InstallCommand() string {
	line := string(i.Name)
	for _, arg := range i.InstallArgs {
		line += " " + arg
	}
	return line
}

// Known returns the descriptors of every selectable package manager in
// probe order. Availability is not set.
func Known() []Info {
	return []Info{
		newInfo(config.PackageManagerNPM),
		newInfo(config.PackageManagerPNPM),
		newInfo(config.PackageManagerYarn),
	}
}

// Lookup returns the descriptor of a selectable package manager.
func Lookup(name config.PackageManager) (Info, bool) {
	for _, info := range Known() {
		if info.Name == name {
			return info, true
		}
	}
	return Info{}, false
}

func newInfo(name config.PackageManager) Info {
	info := Info{Name: name, InstallArgs: []string{"install"}}
	if name == config.PackageManagerYarn {
		info.runScript = func(script string) []string { return []string{script} }
	} else {
		info.runScript = func(script string) []string { return []string{"run", script} }
	}
	return info
}
