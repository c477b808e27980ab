package validation

import (
	"regexp"
	"slices"
	"strings"

	"github.com/imamik/create-bluewaves-app/internal/apperr"
)

// MaxProjectNameLength is the longest package name the npm registry accepts.
const MaxProjectNameLength = 214

var (
	projectNameChars = regexp.MustCompile(`^[a-z0-9._-]+$`)

	reservedNames = []string{"node_modules", "favicon.ico"}

	nodeCoreModules = []string{
		"assert", "async_hooks", "buffer", "child_process", "cluster", "console",
		"constants", "crypto", "dgram", "diagnostics_channel", "dns", "domain",
		"events", "fs", "http", "http2", "https", "inspector", "module", "net",
		"os", "path", "perf_hooks", "process", "punycode", "querystring",
		"readline", "repl", "stream", "string_decoder", "sys", "timers", "tls",
		"trace_events", "tty", "url", "util", "v8", "vm", "wasi",
		"worker_threads", "zlib",
	}
)

// ValidateProjectName checks that name is usable both as a new npm package
// name and as a directory name.
func ValidateProjectName(name string) error {
	if name == "" {
		return apperr.New(apperr.InvalidProjectName, "Project name is required")
	}

	if reason := npmNameProblem(name); reason != "" {
		return apperr.New(apperr.InvalidProjectName, "Invalid project name: %s", reason)
	}

	if len(name) > MaxProjectNameLength {
		return apperr.New(apperr.InvalidProjectName,
			"Project name is too long (max %d characters)", MaxProjectNameLength)
	}

	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return apperr.New(apperr.InvalidProjectName, "Project name contains invalid characters")
	}

	return nil
}

// npmNameProblem returns the first npm naming rule name breaks, or "".
func npmNameProblem(name string) string {
	switch {
	case strings.TrimSpace(name) != name:
		return "name cannot contain leading or trailing spaces"
	case strings.HasPrefix(name, "."):
		return "name cannot start with a period"
	case strings.HasPrefix(name, "_"):
		return "name cannot start with an underscore"
	case slices.Contains(reservedNames, name):
		return name + " is not a valid package name"
	case slices.Contains(nodeCoreModules, name):
		return name + " is a core module name"
	case strings.ToLower(name) != name:
		return "name can no longer contain capital letters"
	case strings.Contains(name, "/") || strings.Contains(name, `\`):
		// Reported by the path check with its own message.
		return ""
	case !projectNameChars.MatchString(name):
		return "name can only contain URL-friendly characters"
	default:
		return ""
	}
}
