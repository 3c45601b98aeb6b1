package main

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants for consistent theming
var (
	// Primary colors
	colorBlue   = lipgloss.Color("blue")
	colorYellow = lipgloss.Color("yellow")
	colorWhite  = lipgloss.Color("white")

	// Gray scale (for subtle elements)
	colorGray243 = lipgloss.Color("243") // Medium gray
	colorGray244 = lipgloss.Color("244") // Subtle gray
	colorGray245 = lipgloss.Color("245") // Light gray
	colorGray235 = lipgloss.Color("235") // Dark gray (background)
	colorGray237 = lipgloss.Color("237") // Border gray

	// Change colors
	colorGreen142 = lipgloss.Color("142") // Soft green (insertions)
	colorGreen86  = lipgloss.Color("86")  // Bright green (located markers)
	colorRed203   = lipgloss.Color("203") // Soft red (deletions)
	colorRed196   = lipgloss.Color("196") // Bright red (unlocated markers)

	// Accent colors
	colorSoftBlue75 = lipgloss.Color("75")  // Soft blue (selection)
	colorSoftYellow = lipgloss.Color("229") // Soft warm yellow (replacements)
)

// Predefined styles for reuse
var (
	// Header styles
	headerStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	headerSeparatorStyle = lipgloss.NewStyle().
				Foreground(colorGray237)

	subtleStyle = lipgloss.NewStyle().
			Foreground(colorGray244)

	// Hunk list styles
	insertStyle = lipgloss.NewStyle().
			Foreground(colorGreen142).
			Bold(true)

	replaceStyle = lipgloss.NewStyle().
			Foreground(colorSoftYellow).
			Bold(true)

	deleteStyle = lipgloss.NewStyle().
			Foreground(colorRed203).
			Bold(true)

	locatedStyle = lipgloss.NewStyle().
			Foreground(colorGreen86)

	unlocatedStyle = lipgloss.NewStyle().
			Foreground(colorRed196)

	// Selection styles
	selectedLineStyle = lipgloss.NewStyle().
				Background(colorGray235)

	// Detail panel styles
	detailLabelStyle = lipgloss.NewStyle().
				Foreground(colorSoftBlue75).
				Bold(true)

	detailValueStyle = lipgloss.NewStyle().
				Foreground(colorGray245)

	detailScoreStyle = lipgloss.NewStyle().
				Foreground(colorSoftYellow)

	panelInfoStyle = lipgloss.NewStyle().
			Foreground(colorGray243).
			Italic(true)

	// Stats styles
	statsSubtleStyle = lipgloss.NewStyle().
				Foreground(colorGray244)

	// Border styles
	panelBaseStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray237)

	// Help modal styles
	helpTitleStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true).
			Underline(true)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorSoftYellow).
			Bold(true).
			Width(12)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorGray243)

	helpSectionStyle = lipgloss.NewStyle().
				Foreground(colorSoftBlue75).
				Bold(true).
				MarginTop(1)

	// Error styles
	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed203).
			Bold(true)

	// Footer styles
	footerBaseStyle = lipgloss.NewStyle().
			Foreground(colorGray243)

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	footerScrollStyle = lipgloss.NewStyle().
				Foreground(colorYellow)
)

// statusListStyle returns the list entry style for a hunk status
func statusListStyle(status HunkStatus) lipgloss.Style {
	switch status {
	case StatusInsert:
		return insertStyle
	case StatusDelete:
		return deleteStyle
	case StatusReplace:
		return replaceStyle
	default:
		return subtleStyle
	}
}

// statusSymbol returns the list symbol for a hunk status
func statusSymbol(status HunkStatus) string {
	switch status {
	case StatusInsert:
		return "+"
	case StatusDelete:
		return "-"
	case StatusReplace:
		return "~"
	default:
		return "?"
	}
}
