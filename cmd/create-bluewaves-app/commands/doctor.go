package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/create-bluewaves-app/cmd/create-bluewaves-app/handlers"
)

// Function variable for dependency injection in tests.
var doctorHandler = handlers.Doctor

// Doctor returns the command that checks the host for the tools a run needs.
//
// Optional flags:
//
//	--json: Output in JSON format
func Doctor() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check Node.js, package managers and git",
		Long: `Check the host for the tools create-bluewaves-app shells out to.

Reports:
  - Node.js and whether its version is supported
  - npm, pnpm and yarn with their versions
  - git (optional)
  - the package manager detected in the current directory
  - the location of the user defaults file

Exits non-zero when a project could not be created.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handled(doctorHandler(jsonOutput))
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
