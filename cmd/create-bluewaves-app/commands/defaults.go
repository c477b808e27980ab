package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/create-bluewaves-app/cmd/create-bluewaves-app/handlers"
)

// Function variable for dependency injection in tests.
var defaultsHandler = handlers.Defaults

// Defaults returns the command that edits the user defaults file.
//
// Optional flags:
//
//	--show: Print the current defaults instead of editing them
func Defaults() *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Set the default template, package manager and skip options",
		Long: `Interactively set the defaults used when a flag is not given.

The answers are written to config.yaml in the create-bluewaves-app
directory under the XDG config home. Flags and interactive answers
always take precedence.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handled(defaultsHandler(cmd.Context(), show))
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "Print the current defaults")

	return cmd
}
