package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_QuietHidesDebug(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := New(&buf, false)

	Debug(logger).Info("detected package manager", "name", "pnpm")
	assert.Empty(t, buf.String())

	logger.Info("creating project")
	assert.Contains(t, buf.String(), `"msg"="creating project"`)
}

func TestNew_VerboseShowsDebug(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := New(&buf, true)

	Debug(logger).Info("detected package manager", "name", "pnpm")

	out := buf.String()
	assert.Contains(t, out, `"msg"="detected package manager"`)
	assert.Contains(t, out, `"name"="pnpm"`)
}

func TestNew_NamedPrefix(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := New(&buf, false).WithName("prober")

	logger.Info("probing")
	assert.Contains(t, buf.String(), "prober: ")
}
