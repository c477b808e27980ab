package benchmarks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/imamik/create-bluewaves-app/internal/provisioning"
)

var fullRun = []string{
	provisioning.LabelScaffold,
	provisioning.LabelComponents,
	provisioning.LabelDesignSystem,
	"Setting up minimal template",
	provisioning.LabelInstall,
	provisioning.LabelGit,
	provisioning.LabelFinalTouches,
}

func TestExpected(t *testing.T) {
	assert.Equal(t, 45*time.Second, Expected(provisioning.LabelScaffold))
	assert.Equal(t, time.Second, Expected("Setting up blog template"))
}

func TestTotalEstimate(t *testing.T) {
	// 45 + 40 + 2 + 1 + 30 + 2 + 1
	assert.Equal(t, 121*time.Second, TotalEstimate(fullRun))
}

func TestEstimateRemaining_FirstStep(t *testing.T) {
	// (45-10) + 40 + 2 + 1 + 30 + 2 + 1
	remaining := EstimateRemaining(fullRun, 0, 10*time.Second, nil)
	assert.Equal(t, 111*time.Second, remaining)
}

func TestEstimateRemaining_ScalesWithHistory(t *testing.T) {
	// Scaffold took twice as long as expected, so the rest is stretched 2x:
	// (40*2 - 0) + (2 + 1 + 30 + 2 + 1) * 2
	completed := []time.Duration{90 * time.Second}
	remaining := EstimateRemaining(fullRun, 1, 0, completed)
	assert.Equal(t, 152*time.Second, remaining)
}

func TestEstimateRemaining_OutOfRange(t *testing.T) {
	assert.Zero(t, EstimateRemaining(fullRun, len(fullRun), 0, nil))
	assert.Zero(t, EstimateRemaining(fullRun, -1, 0, nil))
}

func TestPerformanceScale(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		elapsed   time.Duration
		completed []time.Duration
		want      float64
	}{
		{"no history", 0, 0, nil, 1.0},
		{"on time", 1, 0, []time.Duration{45 * time.Second}, 1.0},
		{"overrun current", 0, 90 * time.Second, nil, 2.0},
		{"capped high", 1, 0, []time.Duration{10 * time.Minute}, 3.0},
		{"capped low", 1, 0, []time.Duration{time.Second}, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PerformanceScale(fullRun, tt.current, tt.elapsed, tt.completed)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}
