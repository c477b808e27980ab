// Package benchmarks provides timing estimates for project provisioning steps.
package benchmarks

import (
	"time"

	"github.com/imamik/create-bluewaves-app/internal/provisioning"
)

// DefaultTimings are typical step durations on a warm package cache (seconds).
var DefaultTimings = map[string]int{
	provisioning.LabelScaffold:     45,
	provisioning.LabelComponents:   40,
	provisioning.LabelDesignSystem: 2,
	provisioning.LabelInstall:      30,
	provisioning.LabelGit:          2,
	provisioning.LabelFinalTouches: 1,
}

// fallbackTiming is used for steps without a benchmark, such as the
// template step whose label depends on the chosen template.
const fallbackTiming = 1

// Expected returns the benchmark duration of the step with the given label.
func Expected(label string) time.Duration {
	secs, ok := DefaultTimings[label]
	if !ok {
		secs = fallbackTiming
	}
	return time.Duration(secs) * time.Second
}

// EstimateRemaining calculates the time left for the steps from current
// onwards. completed holds the observed durations of the steps before
// current and is used to scale the estimate.
func EstimateRemaining(labels []string, current int, stepElapsed time.Duration, completed []time.Duration) time.Duration {
	if current < 0 || current >= len(labels) {
		return 0
	}
	scale := PerformanceScale(labels, current, stepElapsed, completed)
	return estimateWithScale(labels, current, stepElapsed, scale)
}

// estimateWithScale calculates the time left while applying a
// performance scale factor.
func estimateWithScale(labels []string, current int, stepElapsed time.Duration, scale float64) time.Duration {
	if current < 0 || current >= len(labels) {
		return 0
	}

	var remaining time.Duration

	// For the current step: max(0, expected - elapsed)
	expected := time.Duration(float64(Expected(labels[current])) * scale)
	if expected > stepElapsed {
		remaining += expected - stepElapsed
	}

	for _, label := range labels[current+1:] {
		remaining += time.Duration(float64(Expected(label)) * scale)
	}

	return remaining
}

// PerformanceScale derives a speed multiplier from observed-vs-expected
// durations. Example: expected 40s, observed 60s => scale=1.5.
func PerformanceScale(labels []string, current int, stepElapsed time.Duration, completed []time.Duration) float64 {
	var expectedTotal time.Duration
	var actualTotal time.Duration

	for i, actual := range completed {
		if i >= len(labels) {
			break
		}
		expectedTotal += Expected(labels[i])
		actualTotal += actual
	}

	// An overrunning current step is folded in immediately so the ETA adapts.
	if current >= 0 && current < len(labels) && stepElapsed > 0 {
		expectedCurrent := Expected(labels[current])
		if stepElapsed > expectedCurrent {
			expectedTotal += expectedCurrent
			actualTotal += stepElapsed
		}
	}

	if expectedTotal == 0 || actualTotal == 0 {
		return 1.0
	}

	scale := float64(actualTotal) / float64(expectedTotal)
	if scale < 0.25 {
		return 0.25
	}
	if scale > 3.0 {
		return 3.0
	}
	return scale
}

// TotalEstimate returns the total estimated time for the given steps.
func TotalEstimate(labels []string) time.Duration {
	var total time.Duration
	for _, label := range labels {
		total += Expected(label)
	}
	return total
}
