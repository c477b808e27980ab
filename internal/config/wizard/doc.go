// Package wizard provides the interactive prompts of create-bluewaves-app.
//
// It uses charmbracelet/huh for form-based input collection. Prompter is the
// seam the command handlers use; HuhPrompter is the terminal implementation.
// RunDefaultsWizard and WriteDefaults create the user defaults file.
package wizard
