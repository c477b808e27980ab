package provisioning

import (
	"context"
	"os"

	"github.com/go-logr/logr"

	"github.com/imamik/create-bluewaves-app/internal/config"
	"github.com/imamik/create-bluewaves-app/internal/packagemanager"
	"github.com/imamik/create-bluewaves-app/internal/util/shell"
)

// Context wraps all dependencies needed by a provisioning step.
type Context struct {
	context.Context
	Config         *config.ProvisioningConfig
	PackageManager packagemanager.Info
	Runner         shell.Runner
	Observer       Observer
	Log            logr.Logger
}

// NewContext creates a provisioning context that reports to the console.
func NewContext(
	ctx context.Context,
	cfg *config.ProvisioningConfig,
	pm packagemanager.Info,
	runner shell.Runner,
	log logr.Logger,
) *Context {
	return &Context{
		Context:        ctx,
		Config:         cfg,
		PackageManager: pm,
		Runner:         runner,
		Observer:       NewConsoleObserver(os.Stdout),
		Log:            log,
	}
}

// ScaffoldRunner returns the runner used for one-off tools such as
// create-next-app and shadcn.
func (c *Context) ScaffoldRunner() packagemanager.Runner {
	return packagemanager.ResolveRunner(c.PackageManager.Name)
}

// run executes name with args inside the project directory.
func (c *Context) run(name string, args ...string) error {
	return c.Runner.Run(c, shell.Command{Name: name, Args: args, Dir: c.Config.ProjectPath})
}

// runTool executes a one-off package through the scaffold runner in dir.
func (c *Context) runTool(dir, pkg string, args ...string) error {
	r := c.ScaffoldRunner()
	return c.Runner.Run(c, shell.Command{Name: r.Command, Args: r.Invocation(pkg, args...), Dir: dir})
}
