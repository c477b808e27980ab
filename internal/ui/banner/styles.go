package banner

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

var (
	colorBlue  = lipgloss.Color("#0ea5e9")
	colorGreen = lipgloss.Color("#22c55e")
	colorDim   = lipgloss.Color("#6b7280")

	welcomeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	taglineStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen).
			MarginTop(1)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue).
			MarginTop(1)

	itemStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			PaddingLeft(3)

	commandStyle = lipgloss.NewStyle().
			PaddingLeft(3)

	detailStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Line prefixes for the single-line messages.
var (
	errorPrefix   = color.New(color.FgRed, color.Bold)
	warningPrefix = color.New(color.FgYellow)
	infoPrefix    = color.New(color.FgCyan)
)
