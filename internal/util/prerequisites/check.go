// Package prerequisites checks which of the host tools the generator shells
// out to are installed.
package prerequisites

import (
	"fmt"
	"os/exec"
	"strings"
)

// Function variables for dependency injection in tests.
var (
	lookPath = exec.LookPath

	toolVersion = getToolVersion
)

// Tool represents a host tool that may be required.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Required indicates if this tool is mandatory.
	Required bool

	// Description explains what the tool is used for.
	Description string

	// InstallURL provides a URL for installation instructions.
	InstallURL string
}

// DefaultTools returns the tools every invocation needs.
// Node.js runs create-next-app and shadcn.
func DefaultTools() []Tool {
	return []Tool{
		{
			Name:        "node",
			Required:    true,
			Description: "Runs the Next.js scaffolder and the shadcn/ui installer",
			InstallURL:  "https://nodejs.org/en/download",
		},
	}
}

// PackageManagerTools returns the supported package managers. Each one is
// optional on its own; the package-manager prober decides whether at least
// one is usable.
func PackageManagerTools() []Tool {
	return []Tool{
		{
			Name:        "npm",
			Description: "Default Node.js package manager",
			InstallURL:  "https://docs.npmjs.com/downloading-and-installing-node-js-and-npm",
		},
		{
			Name:        "pnpm",
			Description: "Fast, disk space efficient package manager",
			InstallURL:  "https://pnpm.io/installation",
		},
		{
			Name:        "yarn",
			Description: "Yarn package manager",
			InstallURL:  "https://yarnpkg.com/getting-started/install",
		},
	}
}

// OptionalTools returns tools that are useful but not required.
func OptionalTools() []Tool {
	return []Tool{
		{
			Name:        "git",
			Required:    false,
			Description: "Initializes a repository with the first commit",
			InstallURL:  "https://git-scm.com/downloads",
		},
	}
}

// CheckResult contains the result of checking a single tool.
type CheckResult struct {
	Tool    Tool
	Found   bool
	Path    string
	Version string
}

// CheckResults contains the results of checking multiple tools.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// HasErrors returns true if any required tools are missing.
func (r *CheckResults) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// Error returns an error if any required tools are missing.
func (r *CheckResults) Error() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, fmt.Sprintf("%s (%s)", tool.Name, tool.InstallURL))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// Found reports whether the named tool was found.
func (r *CheckResults) Found(name string) bool {
	for _, res := range r.Results {
		if res.Tool.Name == name {
			return res.Found
		}
	}
	return false
}

// Check verifies that the specified tools are available.
func Check(tools []Tool) *CheckResults {
	results := &CheckResults{}

	for _, tool := range tools {
		result := CheckResult{Tool: tool}

		path, err := lookPath(tool.Name)
		if err == nil {
			result.Found = true
			result.Path = path
			// Try to get version (best effort)
			result.Version = toolVersion(tool.Name)
		} else {
			results.Missing = append(results.Missing, tool)
		}

		results.Results = append(results.Results, result)
	}

	return results
}

// CheckAll checks every tool the generator may use.
func CheckAll() *CheckResults {
	defaults := DefaultTools()
	managers := PackageManagerTools()
	optional := OptionalTools()
	all := make([]Tool, 0, len(defaults)+len(managers)+len(optional))
	all = append(all, defaults...)
	all = append(all, managers...)
	all = append(all, optional...)
	return Check(all)
}

// getToolVersion attempts to get the version of a tool.
// Returns empty string if version cannot be determined.
func getToolVersion(name string) string {
	versionFlags := []string{"--version", "version", "-v"}

	for _, flag := range versionFlags {
		// #nosec G204 - name comes from trusted Tool definitions, not user input
		cmd := exec.Command(name, flag)
		output, err := cmd.Output()
		if err == nil {
			lines := strings.Split(string(output), "\n")
			if len(lines) > 0 {
				return strings.TrimSpace(lines[0])
			}
		}
	}

	return ""
}
