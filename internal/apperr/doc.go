// Package apperr defines the error taxonomy shared by the validator, the
// package-manager prober and the CLI handler.
//
// Every expected failure carries a stable [Code] so callers can branch on
// the kind of failure (for example the overwrite recovery path for
// [DirectoryNotEmpty]) without matching on message text.
package apperr
