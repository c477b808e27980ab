// Package validation checks every user input and the host environment
// before anything is written to disk.
//
// Each check fails with an *apperr.Error carrying a distinct code. Checks
// never modify the filesystem; the path check only probes it.
package validation
