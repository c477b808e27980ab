// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/imamik/create-bluewaves-app/cmd/create-bluewaves-app/handlers"
	"github.com/imamik/create-bluewaves-app/internal/config"
)

// Function variable for dependency injection in tests.
var createHandler = handlers.Create

// Root returns the root command for the create-bluewaves-app CLI.
//
// Given a project name or any flag, the root command creates a project.
// Without either it prints the usage help.
//
// Flags:
//
//	--template, -t: Template to use
//	--package-manager, -p: Package manager to use
//	--use-npm, --use-pnpm, --use-yarn: Shorthands for --package-manager
//	--skip-install: Do not install dependencies
//	--skip-git: Do not initialize a git repository
//	--force, -f: Overwrite a non-empty target without asking
//	--verbose: Stream tool output, show causes and stack traces
func Root() *cobra.Command {
	var opts config.Options

	cmd := &cobra.Command{
		Use:   config.AppName + " [project-name]",
		Short: "Create a Next.js app with the Surfer design system and shadcn/ui",
		Long: `Create a new Bluewaves app: Next.js with the App Router, the Surfer
design system, shadcn/ui components, Tailwind CSS and TypeScript.

Every input is validated before anything is written to disk. Missing
answers are asked for on an interactive terminal.

Examples:
  # Create a project interactively
  create-bluewaves-app my-app

  # Create a dashboard with npm, without prompts
  create-bluewaves-app my-app --template dashboard --use-npm

  # Create a project, keep installation for later
  create-bluewaves-app my-app --skip-install --skip-git`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && cmd.Flags().NFlag() == 0 {
				return cmd.Help()
			}
			opts.TemplateSet = cmd.Flags().Changed("template")
			return handled(createHandler(cmd.Context(), args, opts))
		},
	}

	templates := make([]string, 0, len(config.Templates()))
	for _, t := range config.Templates() {
		templates = append(templates, string(t))
	}
	managers := make([]string, 0, len(config.PackageManagers()))
	for _, pm := range config.PackageManagers() {
		managers = append(managers, string(pm))
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Template, "template", "t", "",
		"Template to use ("+strings.Join(templates, ", ")+") (default \"minimal\", or prompted)")
	flags.StringVarP(&opts.PackageManager, "package-manager", "p", "",
		"Package manager to use ("+strings.Join(managers, ", ")+")")
	flags.BoolVar(&opts.UseNPM, "use-npm", false, "Use npm (shorthand for --package-manager npm)")
	flags.BoolVar(&opts.UsePNPM, "use-pnpm", false, "Use pnpm (shorthand for --package-manager pnpm)")
	flags.BoolVar(&opts.UseYarn, "use-yarn", false, "Use yarn (shorthand for --package-manager yarn)")
	flags.BoolVar(&opts.SkipInstall, "skip-install", false, "Skip package installation")
	flags.BoolVar(&opts.SkipGit, "skip-git", false, "Skip git repository initialization")
	flags.BoolVarP(&opts.Force, "force", "f", false, "Overwrite a non-empty target directory without asking")
	cmd.PersistentFlags().BoolVar(&opts.Verbose, "verbose", false, "Stream tool output and show error causes")

	cmd.MarkFlagsMutuallyExclusive("package-manager", "use-npm", "use-pnpm", "use-yarn")

	_ = cmd.RegisterFlagCompletionFunc("template", fixedCompletions(templates))
	_ = cmd.RegisterFlagCompletionFunc("package-manager", fixedCompletions(managers))

	cmd.AddCommand(Doctor())
	cmd.AddCommand(Defaults())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

func fixedCompletions(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
