package banner

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/imamik/create-bluewaves-app/internal/apperr"
	"github.com/imamik/create-bluewaves-app/internal/config"
	"github.com/imamik/create-bluewaves-app/internal/packagemanager"
)

// UnexpectedErrorMessage prefixes errors outside the apperr taxonomy.
const UnexpectedErrorMessage = "An unexpected error occurred"

// CancelledMessage is printed when the operator declines to continue.
const CancelledMessage = "Operation cancelled by user"

// DocsURL points to the design system documentation.
const DocsURL = "https://surfer.bluewaves.ai"

// Welcome prints the greeting shown before any prompt.
func Welcome(w io.Writer) {
	_, _ = fmt.Fprintln(w, welcomeStyle.Render("Welcome to create-bluewaves-app"))
	_, _ = fmt.Fprintln(w, taglineStyle.Render("Next.js + Surfer design system + shadcn/ui"))
	_, _ = fmt.Fprintln(w)
}

// Plan prints what is about to be created.
func Plan(w io.Writer, cfg *config.ProvisioningConfig) {
	_, _ = fmt.Fprintln(w, welcomeStyle.Render("Creating your Bluewaves app..."))
	_, _ = fmt.Fprintln(w, detailStyle.Render("Project: "+cfg.ProjectName))
	_, _ = fmt.Fprintln(w, detailStyle.Render("Template: "+string(cfg.Template)))
	_, _ = fmt.Fprintln(w, detailStyle.Render("Package manager: "+string(cfg.PackageManager)))
	_, _ = fmt.Fprintln(w)
}

// Summary describes a finished run.
type Summary struct {
	Config         *config.ProvisioningConfig
	PackageManager packagemanager.Info
	// ComponentCount is the number of shadcn/ui components installed.
	ComponentCount int
	Duration       time.Duration
}

// NextSteps returns the commands the operator runs after a successful run.
// When installation was skipped the install command comes first.
func NextSteps(s Summary) []string {
	steps := []string{"cd " + s.Config.ProjectName}
	if s.Config.SkipInstall {
		steps = append(steps, s.PackageManager.InstallCommand())
	}
	return append(steps, s.PackageManager.RunCommand("dev"))
}

// Success prints the success banner: project path, chosen options and next
// steps.
func Success(w io.Writer, s Summary) {
	var b strings.Builder

	b.WriteString(successStyle.Render("Success! Your Bluewaves app is ready to surf."))
	b.WriteString("\n")
	created := "Created " + s.Config.ProjectName + " at " + s.Config.ProjectPath
	if s.Duration > 0 {
		created += fmt.Sprintf(" in %.1fs", s.Duration.Seconds())
	}
	b.WriteString(detailStyle.Render(created))
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Project created with:"))
	b.WriteString("\n")
	items := []string{
		"Next.js with App Router",
		"Surfer design system",
		fmt.Sprintf("shadcn/ui (%d components)", s.ComponentCount),
		"Tailwind CSS",
		"TypeScript and ESLint",
		fmt.Sprintf("%s template", s.Config.Template),
		fmt.Sprintf("%s as package manager", s.PackageManager.Name),
	}
	if s.Config.SkipInstall {
		items = append(items, "dependencies not installed (--skip-install)")
	}
	if s.Config.SkipGit {
		items = append(items, "no git repository (--skip-git)")
	}
	for _, item := range items {
		b.WriteString(itemStyle.Render("+ " + item))
		b.WriteString("\n")
	}

	b.WriteString(headingStyle.Render("Next steps:"))
	b.WriteString("\n")
	for _, step := range NextSteps(s) {
		b.WriteString(commandStyle.Render(step))
		b.WriteString("\n")
	}

	b.WriteString(headingStyle.Render("Documentation:"))
	b.WriteString("\n")
	b.WriteString(itemStyle.Render(DocsURL))
	b.WriteString("\n\n")

	_, _ = io.WriteString(w, b.String())
}

// ErrorMessage returns the one-line message for err. Errors from the apperr
// taxonomy carry their own message; anything else is reported as
// unexpected.
func ErrorMessage(err error) string {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return UnexpectedErrorMessage + ": " + firstLine(err.Error())
}

// Error prints err as a single red-prefixed line. With verbose set the cause
// follows, then the first stack trace recorded with pkg/errors anywhere in
// the chain.
func Error(w io.Writer, err error, verbose bool) {
	if err == nil {
		return
	}
	Fail(w, ErrorMessage(err))

	if !verbose {
		return
	}

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		if appErr.Cause == nil {
			return
		}
		_, _ = fmt.Fprintln(w, detailStyle.Render("Cause: "+appErr.Cause.Error()))
		err = appErr.Cause
	}

	if st := stackTrace(err); st != nil {
		_, _ = fmt.Fprintln(w, detailStyle.Render(strings.TrimPrefix(fmt.Sprintf("%+v", st), "\n")))
	}
}

// stackTracer is implemented by errors created or wrapped with pkg/errors.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// stackTrace returns the outermost stack trace in the chain of err.
func stackTrace(err error) pkgerrors.StackTrace {
	var st stackTracer
	if errors.As(err, &st) {
		return st.StackTrace()
	}
	return nil
}

// Fail prints message as a single red-prefixed line.
func Fail(w io.Writer, message string) {
	_, _ = errorPrefix.Fprint(w, "Error: ")
	_, _ = fmt.Fprintln(w, message)
}

// Warning prints a yellow-prefixed warning line.
func Warning(w io.Writer, format string, args ...any) {
	_, _ = warningPrefix.Fprint(w, "Warning: ")
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}

// Info prints a cyan-prefixed informational line.
func Info(w io.Writer, format string, args ...any) {
	_, _ = infoPrefix.Fprint(w, "> ")
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}

// Cancelled prints the message for a declined confirmation.
func Cancelled(w io.Writer) {
	Info(w, CancelledMessage)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
