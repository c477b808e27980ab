package validation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/imamik/create-bluewaves-app/internal/apperr"
)

// ignorableEntries may already exist in a target directory without making
// it count as non-empty.
var ignorableEntries = []string{".git", ".gitignore", ".DS_Store", "Thumbs.db"}

// IsIgnorableEntry reports whether a directory entry may be left in place
// when a project is created over it.
func IsIgnorableEntry(name string) bool {
	return slices.Contains(ignorableEntries, name)
}

// ValidateProjectPath resolves path and checks that a project can be created
// there. It returns the absolute path.
func ValidateProjectPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	parent := filepath.Dir(abs)
	if err := checkWritable(parent); err != nil {
		return abs, apperr.Wrap(err, apperr.PermissionDenied, "Cannot write to directory: %s", parent)
	}

	info, err := os.Stat(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return abs, nil
	}
	if err != nil {
		return abs, apperr.Wrap(err, apperr.PermissionDenied, "Cannot inspect %s", abs)
	}

	if !info.IsDir() {
		return abs, apperr.New(apperr.DirectoryNotEmpty, "%s already exists and is not a directory", path)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return abs, apperr.Wrap(err, apperr.PermissionDenied, "Cannot read directory: %s", abs)
	}
	for _, entry := range entries {
		if !IsIgnorableEntry(entry.Name()) {
			return abs, apperr.New(apperr.DirectoryNotEmpty, "Directory %s is not empty", path)
		}
	}

	return abs, nil
}
