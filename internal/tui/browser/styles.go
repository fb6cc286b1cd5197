package browser

import (
	"github.com/charmbracelet/lipgloss"
)

const navWidth = 32

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	successColor = lipgloss.Color("42")  // Green
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(1).
			PaddingRight(1)

	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor)

	navStyle = lipgloss.NewStyle().
			Width(navWidth).
			PaddingRight(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(mutedColor)

	groupStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Bold(true).
			MarginTop(1)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(accentColor).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(primaryColor)

	activeMarkerStyle = lipgloss.NewStyle().
				Foreground(successColor)

	mainStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	mainTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	errorPanelStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(errorColor).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	copiedStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	footerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)
)
