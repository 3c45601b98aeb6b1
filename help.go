package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyBinding represents a keyboard shortcut with its description
type KeyBinding struct {
	Key     string
	Action  string
	Section string
}

// All key bindings for the application
var keyBindings = []KeyBinding{
	// Navigation
	{"up/k", "Move up", "Navigation"},
	{"down/j", "Move down", "Navigation"},
	{"pgup", "Page up", "Navigation"},
	{"pgdown", "Page down", "Navigation"},

	// Actions
	{"s", "Show before/after tree match", "Actions"},
	{"r", "Rerun the comparison", "Actions"},

	// Panels
	{"tab", "Switch between change list and detail", "Panels"},

	// System
	{"q/ctrl+c", "Quit application", "System"},
	{"?", "Show/hide this help screen", "System"},
}

// renderHelp renders the help modal
func (m Model) renderHelp() string {
	if !m.showHelp {
		return ""
	}

	modalWidth, modalHeight := helpModalDimensions(m.width, m.height)

	modalStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Background(colorGray235).
		Padding(1, 2)

	var content strings.Builder

	content.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	content.WriteString("\n\n")

	currentSection := ""
	for _, kb := range keyBindings {
		if kb.Section != currentSection {
			currentSection = kb.Section
			content.WriteString("\n")
			content.WriteString(helpSectionStyle.Render(currentSection))
			content.WriteString("\n")
		}

		key := helpKeyStyle.Render(fmt.Sprintf(" %-8s", kb.Key))
		desc := helpDescStyle.Render(kb.Action)
		content.WriteString(fmt.Sprintf("%s %s\n", key, desc))
	}

	content.WriteString("\n")
	content.WriteString(subtleStyle.Render("Press ? to close"))

	helpContent := modalStyle.Render(content.String())
	helpLines := strings.Split(helpContent, "\n")

	verticalPadding := max(0, (m.height-len(helpLines))/2)
	horizontalPadding := max(0, (m.width-modalWidth)/2)

	var result strings.Builder
	for i := 0; i < verticalPadding; i++ {
		result.WriteString("\n")
	}

	for _, line := range helpLines {
		result.WriteString(strings.Repeat(" ", horizontalPadding))
		result.WriteString(line)
		result.WriteString("\n")
	}

	return result.String()
}

// GetKeyBindings returns all key bindings (for documentation/testing)
func GetKeyBindings() []KeyBinding {
	return keyBindings
}
