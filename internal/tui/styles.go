package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive colors for dark/light terminals
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorGreen   = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingLeft(1)

	indexStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	dateStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			PaddingLeft(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			PaddingLeft(1)

	readerHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	readerMetaStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			PaddingLeft(1)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)
