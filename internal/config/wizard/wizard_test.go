package wizard

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/create-bluewaves-app/internal/apperr"
	"github.com/imamik/create-bluewaves-app/internal/config"
)

// stubForms replaces form execution for the duration of the test. The
// bound values keep whatever the prompt pre-filled.
func stubForms(t *testing.T, err error) *int {
	t.Helper()
	calls := 0
	orig := runForm
	runForm = func(_ context.Context, _ *huh.Form) error {
		calls++
		return err
	}
	t.Cleanup(func() { runForm = orig })
	return &calls
}

func TestHuhPrompter_ReturnsDefaults(t *testing.T) {
	calls := stubForms(t, nil)
	p := NewPrompter(false)
	ctx := context.Background()

	name, err := p.ProjectName(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultProjectName, name)

	tmpl, err := p.Template(ctx, config.TemplateSaaS)
	require.NoError(t, err)
	assert.Equal(t, config.TemplateSaaS, tmpl)

	tmpl, err = p.Template(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, config.TemplateMinimal, tmpl)

	pm, err := p.PackageManager(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, RecommendedPackageManager, pm)

	pm, err = p.PackageManager(ctx, config.PackageManagerYarn)
	require.NoError(t, err)
	assert.Equal(t, config.PackageManagerYarn, pm)

	confirmed, err := p.ConfirmOverwrite(ctx, "my-app")
	require.NoError(t, err)
	assert.False(t, confirmed, "overwrite must default to no")

	assert.Equal(t, 6, *calls)
}

func TestHuhPrompter_Aborted(t *testing.T) {
	stubForms(t, huh.ErrUserAborted)

	_, err := NewPrompter(false).ProjectName(context.Background(), "x")
	assert.ErrorIs(t, err, ErrCancelled)

	_, err = NewPrompter(false).ConfirmOverwrite(context.Background(), "x")
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestHuhPrompter_FormError(t *testing.T) {
	formErr := errors.New("could not open a new TTY")
	stubForms(t, formErr)

	_, err := NewPrompter(false).Template(context.Background(), config.TemplateMinimal)
	assert.ErrorIs(t, err, formErr)
	assert.NotErrorIs(t, err, ErrCancelled)
}

func TestValidateProjectName(t *testing.T) {
	assert.NoError(t, validateProjectName("my-app"))

	err := validateProjectName("")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.InvalidProjectName))

	assert.Error(t, validateProjectName("My App"))
}

func TestTemplateOptions(t *testing.T) {
	opts := TemplateOptions(config.TemplateDashboard)
	require.Len(t, opts, len(config.Templates()))

	for i, opt := range opts {
		assert.Equal(t, config.Templates()[i], opt.Value)
		assert.Contains(t, opt.Key, opt.Value.Description())
	}
}

func TestPackageManagerOptions(t *testing.T) {
	opts := PackageManagerOptions(config.PackageManagerNPM)
	require.Len(t, opts, 3)

	assert.Equal(t, config.PackageManagerPNPM, opts[0].Value)
	assert.Equal(t, "pnpm (recommended)", opts[0].Key)
	assert.Equal(t, "npm", opts[1].Key)
	assert.Equal(t, "yarn", opts[2].Key)
}

func TestRunDefaultsWizard(t *testing.T) {
	calls := stubForms(t, nil)

	current := &config.Defaults{Template: "landing", PackageManager: "npm", SkipGit: true}
	got, err := RunDefaultsWizard(context.Background(), false, current)
	require.NoError(t, err)

	assert.Equal(t, current, got)
	assert.NotSame(t, current, got)
	assert.Equal(t, 3, *calls)
}

func TestRunDefaultsWizard_NilStartsFromBuiltin(t *testing.T) {
	stubForms(t, nil)

	got, err := RunDefaultsWizard(context.Background(), false, nil)
	require.NoError(t, err)
	assert.Equal(t, string(config.TemplateMinimal), got.Template)
	assert.Equal(t, string(RecommendedPackageManager), got.PackageManager)
}

func TestWriteDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", config.DefaultsFilename)
	want := &config.Defaults{Template: "saas", PackageManager: "yarn", SkipInstall: true}

	require.NoError(t, WriteDefaults(want, path))
	assert.True(t, FileExists(path))

	got, err := config.LoadDefaultsFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWriteDefaults_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultsFilename)
	err := WriteDefaults(&config.Defaults{Template: "blog"}, path)

	require.Error(t, err)
	assert.False(t, FileExists(path))
}
