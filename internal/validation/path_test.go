package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/create-bluewaves-app/internal/apperr"
	testutil "github.com/imamik/create-bluewaves-app/internal/testing"
)

func TestValidateProjectPath_Nonexistent(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "my-app")
	abs, err := ValidateProjectPath(target)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))
	assert.Equal(t, target, abs)
}

func TestValidateProjectPath_EmptyDirectory(t *testing.T) {
	t.Parallel()

	_, err := ValidateProjectPath(t.TempDir())
	assert.NoError(t, err)
}

func TestValidateProjectPath_OnlyIgnorableEntries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	testutil.WriteFile(t, dir, ".gitignore", "node_modules\n")
	testutil.WriteFile(t, dir, ".DS_Store", "")
	testutil.WriteFile(t, dir, "Thumbs.db", "")

	_, err := ValidateProjectPath(dir)
	assert.NoError(t, err)
}

func TestValidateProjectPath_NotEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry string
	}{
		{"regular file", "index.ts"},
		{"other hidden file", ".env"},
		{"nested directory", "src/app.ts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			testutil.WriteFile(t, dir, ".git/HEAD", "ref: refs/heads/main\n")
			testutil.WriteFile(t, dir, tt.entry, "x")

			abs, err := ValidateProjectPath(dir)
			assert.True(t, apperr.Is(err, apperr.DirectoryNotEmpty), "got %v", err)
			assert.Equal(t, dir, abs)
		})
	}
}

func TestValidateProjectPath_RegularFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteFile(t, dir, "my-app", "not a directory")

	_, err := ValidateProjectPath(filepath.Join(dir, "my-app"))
	assert.True(t, apperr.Is(err, apperr.DirectoryNotEmpty))
}

func TestValidateProjectPath_ParentNotWritable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses directory permissions")
	}
	t.Parallel()

	parent := filepath.Join(t.TempDir(), "readonly")
	require.NoError(t, os.Mkdir(parent, 0o555))
	t.Cleanup(func() { _ = os.Chmod(parent, 0o755) })

	_, err := ValidateProjectPath(filepath.Join(parent, "my-app"))
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.PermissionDenied))
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.NotNil(t, appErr.Cause)
}

func TestValidateProjectPath_ParentMissing(t *testing.T) {
	t.Parallel()

	_, err := ValidateProjectPath(filepath.Join(t.TempDir(), "missing", "my-app"))
	assert.True(t, apperr.Is(err, apperr.PermissionDenied))
}

func TestValidateProjectPath_Relative(t *testing.T) {
	t.Parallel()

	abs, err := ValidateProjectPath("some-new-project-that-does-not-exist")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))
}

func TestIsIgnorableEntry(t *testing.T) {
	t.Parallel()

	assert.True(t, IsIgnorableEntry(".git"))
	assert.True(t, IsIgnorableEntry("Thumbs.db"))
	assert.False(t, IsIgnorableEntry(".env"))
	assert.False(t, IsIgnorableEntry("package.json"))
}
