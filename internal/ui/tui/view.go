package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// styleFunc is a single-string styling function.
type styleFunc func(string) string

// sf wraps a lipgloss.Style into a styleFunc.
func sf(s lipgloss.Style) styleFunc {
	return func(str string) string { return s.Render(str) }
}

func renderView(m Model) string {
	var b strings.Builder

	renderHeader(&b, m)
	renderProgressBar(&b, m)
	renderSteps(&b, m)
	renderFooter(&b, m)

	return b.String()
}

func renderHeader(b *strings.Builder, m Model) {
	b.WriteString(titleStyle.Render("  Creating " + m.ProjectName))
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("  %d steps, usually about %s", len(m.Steps), formatDuration(m.TypicalDuration))))
	b.WriteString("\n")
}

func renderProgressBar(b *strings.Builder, m Model) {
	barWidth := 30
	if m.Width > 0 && m.Width < 60 {
		barWidth = m.Width / 3
	}

	progress := calculateProgress(m)
	filled := int(progress * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}

	bar := progressBarFull.Render(strings.Repeat("█", filled)) +
		progressBarEmpty.Render(strings.Repeat("░", barWidth-filled))

	pct := int(progress * 100)
	eta := ""
	if m.EstimatedRemaining > 0 && m.Err == nil {
		eta = fmt.Sprintf(" ETA %s", formatDuration(m.EstimatedRemaining))
	}

	fmt.Fprintf(b, "  %s %d%%%s\n", bar, pct, eta)
}

func renderSteps(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("  Steps"))
	b.WriteString("\n")

	for _, row := range m.Steps {
		icon, style := stepIcon(row.Status, m.SpinnerFrame)
		line := fmt.Sprintf("    %s %s", style(icon), style(row.Label))
		switch row.Status {
		case StepDone, StepWarning, StepFailed:
			line += dimStyle.Render(" " + formatDuration(row.Duration))
		case StepActive:
			if !row.StartedAt.IsZero() {
				line += dimStyle.Render(" " + formatDuration(time.Since(row.StartedAt)))
			}
		}
		b.WriteString(line)
		b.WriteString("\n")

		if row.Status == StepFailed && row.Err != nil {
			fmt.Fprintf(b, "         %s\n", failedStyle.Render(firstLine(row.Err.Error())))
		}
	}
}

func renderFooter(b *strings.Builder, m Model) {
	elapsed := formatDuration(time.Since(m.StartTime))
	parts := []string{fmt.Sprintf("elapsed: %s", elapsed)}
	switch {
	case m.Interrupted:
		parts = append(parts, "stopping after the current step")
	case m.Done, m.Err != nil:
	default:
		parts = append(parts, "ctrl+c: cancel")
	}
	b.WriteString(footerStyle.Render("  " + strings.Join(parts, "  |  ")))
	b.WriteString("\n")
}

// Helper functions

func stepIcon(status StepStatus, frame int) (string, styleFunc) {
	switch status {
	case StepDone:
		return checkMark, sf(readyStyle)
	case StepFailed:
		return crossMark, sf(failedStyle)
	case StepWarning:
		return warnMark, sf(warningStyle)
	case StepActive:
		return currentSpinner(frame), sf(activeStyle)
	default:
		return pending, sf(dimStyle)
	}
}

func currentSpinner(frame int) string {
	if len(spinnerFrames) == 0 {
		return spinner
	}
	if frame < 0 {
		frame = -frame
	}
	return spinnerFrames[frame%len(spinnerFrames)]
}

func calculateProgress(m Model) float64 {
	if m.Done {
		return 1.0
	}
	if len(m.Steps) == 0 {
		return 0
	}
	return float64(m.completedCount()) / float64(len(m.Steps))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
