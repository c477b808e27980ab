package handlers

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/go-logr/logr"

	"github.com/imamik/create-bluewaves-app/internal/apperr"
	"github.com/imamik/create-bluewaves-app/internal/config"
	"github.com/imamik/create-bluewaves-app/internal/packagemanager"
	"github.com/imamik/create-bluewaves-app/internal/ui/tui"
	"github.com/imamik/create-bluewaves-app/internal/util/prerequisites"
	"github.com/imamik/create-bluewaves-app/internal/validation"
)

// Factory function variables for doctor - can be replaced in tests.
var (
	// checkTools looks up every host tool.
	checkTools = prerequisites.CheckAll

	// detectPackageManager guesses the package manager of the current
	// directory.
	detectPackageManager = func() (config.PackageManager, error) {
		return packagemanager.NewProber(nil, logr.Discard()).Detect()
	}

	// defaultsPath locates the user defaults file.
	defaultsPath = config.DefaultsPath
)

// DoctorReport is the result of the doctor command.
type DoctorReport struct {
	Node            ToolHealth   `json:"node"`
	PackageManagers []ToolHealth `json:"packageManagers"`
	Git             ToolHealth   `json:"git"`
	Detected        string       `json:"detectedPackageManager,omitempty"`
	DefaultsFile    string       `json:"defaultsFile,omitempty"`
	Problems        []string     `json:"problems,omitempty"`

	code apperr.Code
}

// ToolHealth represents one host tool.
type ToolHealth struct {
	Name     string `json:"name"`
	Found    bool   `json:"found"`
	Path     string `json:"path,omitempty"`
	Version  string `json:"version,omitempty"`
	Required bool   `json:"required"`
	Problem  string `json:"problem,omitempty"`
}

// Healthy reports whether a project can be created on this host.
func (r *DoctorReport) Healthy() bool {
	return len(r.Problems) == 0
}

// Doctor reports the runtime, package managers and git found on the host.
// It fails when a project could not be created.
func Doctor(jsonOutput bool) error {
	report := buildDoctorReport(checkTools())

	if jsonOutput {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		_, _ = fmt.Fprintln(stdout, string(data))
	} else {
		_, _ = fmt.Fprint(stdout, tui.RenderDoctor(doctorSections(report)))
	}

	if !report.Healthy() {
		return apperr.New(report.code, "%d problem(s) found: %s", len(report.Problems), report.Problems[0])
	}
	return nil
}

// addProblem records a problem. The first problem decides the error code.
func (r *DoctorReport) addProblem(code apperr.Code, problem string) {
	if len(r.Problems) == 0 {
		r.code = code
	}
	r.Problems = append(r.Problems, problem)
}

func buildDoctorReport(results *prerequisites.CheckResults) *DoctorReport {
	report := &DoctorReport{}

	for _, res := range results.Results {
		health := ToolHealth{
			Name:     res.Tool.Name,
			Found:    res.Found,
			Path:     res.Path,
			Version:  res.Version,
			Required: res.Tool.Required,
		}
		switch res.Tool.Name {
		case "node":
			if res.Found {
				if err := validation.CheckNodeVersion(res.Version); err != nil {
					health.Problem = err.Error()
					report.addProblem(apperr.UnsupportedRuntimeVersion, health.Problem)
				}
			}
			report.Node = health
		case "git":
			if !res.Found {
				health.Problem = validation.GitMissingWarning
			}
			report.Git = health
		default:
			report.PackageManagers = append(report.PackageManagers, health)
		}
	}

	if results.HasErrors() {
		report.Node.Problem = results.Error().Error()
		report.addProblem(apperr.UnsupportedRuntimeVersion, report.Node.Problem)
	}

	anyManager := slices.ContainsFunc(packagemanager.Known(), func(pm packagemanager.Info) bool {
		return results.Found(string(pm.Name))
	})
	if !anyManager {
		report.addProblem(apperr.NoPackageManager, "No package manager found. Please install npm, pnpm, or yarn.")
	}

	if detected, err := detectPackageManager(); err == nil {
		report.Detected = string(detected)
	}
	if path, err := defaultsPath(); err == nil {
		report.DefaultsFile = path
	}

	return report
}

func doctorSections(r *DoctorReport) []tui.DoctorSection {
	managers := make([]tui.DoctorRow, 0, len(r.PackageManagers))
	for _, pm := range r.PackageManagers {
		managers = append(managers, toolRow(pm, tui.DoctorWarning))
	}

	settings := []tui.DoctorRow{}
	if r.Detected != "" {
		settings = append(settings, tui.DoctorRow{Name: "detected package manager", Detail: r.Detected})
	}
	if r.DefaultsFile != "" {
		settings = append(settings, tui.DoctorRow{Name: "defaults file", Detail: r.DefaultsFile})
	}

	return []tui.DoctorSection{
		{Title: "Runtime", Rows: []tui.DoctorRow{toolRow(r.Node, tui.DoctorMissing)}},
		{Title: "Package managers", Rows: managers},
		{Title: "Version control", Rows: []tui.DoctorRow{toolRow(r.Git, tui.DoctorWarning)}},
		{Title: "Settings", Rows: settings},
	}
}

// toolRow renders a tool, using missing as the status of an absent tool.
func toolRow(t ToolHealth, missing tui.DoctorStatus) tui.DoctorRow {
	row := tui.DoctorRow{Name: t.Name, Detail: t.Version}
	switch {
	case !t.Found:
		row.Status = missing
		row.Detail = "not found"
	case t.Problem != "":
		row.Status = tui.DoctorMissing
		row.Detail = t.Problem
	}
	return row
}
