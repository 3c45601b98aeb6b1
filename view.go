package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		return m.renderHelpModal()
	}

	header := m.renderHeader()
	content := m.renderContent(contentHeight(m.height))
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m Model) renderHeader() string {
	var parts []string

	parts = append(parts, headerStyle.Render("html_compare"))
	parts = append(parts, subtleStyle.Render(m.beforeLabel+" vs "+m.afterLabel))

	total, located := m.GetTotalStats()
	if total > 0 {
		stats := fmt.Sprintf("%d changes, %d located", total, located)
		parts = append(parts, statsSubtleStyle.Render("("+stats+")"))
	} else {
		parts = append(parts, statsSubtleStyle.Render("(no changes)"))
	}

	if m.err != nil {
		parts = append(parts, errorStyle.Render(m.err.Error()))
	}

	parts = append(parts, subtleStyle.Render("Press ? for help"))

	header := strings.Join(parts, " ")
	separator := headerSeparatorStyle.Render(strings.Repeat("─", max(0, m.width)))

	return lipgloss.JoinVertical(lipgloss.Left, header, separator)
}

func (m Model) renderContent(height int) string {
	leftPanel := m.renderHunkList(hunkListWidth(m.width), height)
	rightPanel := m.renderDetailPanel(detailPanelWidth(m.width), height)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)
}

func (m Model) renderHunkList(width, height int) string {
	internalHeight := panelContentHeight(height)

	start, end := visibleRange(m.scrollOffset, internalHeight, len(m.hunks))

	var lines []string
	for i := start; i < end; i++ {
		hunk := &m.hunks[i]
		isSelected := i == m.selectedIndex

		symbol := statusSymbol(hunk.Status)
		indicator := m.matchIndicator(hunk)

		preview := hunk.BeforeText()
		if hunk.Status == StatusInsert {
			preview = hunk.AfterText()
		}
		preview = truncate(preview, hunkPreviewWidth)

		line := fmt.Sprintf("%3d %s %s %s", i+1, symbol, indicator, preview)

		if isSelected && m.panel == HunkListPanel {
			line = selectedLineStyle.Render(line)
		} else {
			line = statusListStyle(hunk.Status).Render(line)
		}

		lines = append(lines, line)
	}

	if len(m.hunks) == 0 {
		lines = append(lines, panelInfoStyle.Render("No changes between documents"))
	}

	content := strings.Join(lines, "\n")

	panelStyle := panelBaseStyle.
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height)

	if m.panel == HunkListPanel {
		panelStyle = panelStyle.BorderForeground(colorBlue)
	}

	return panelStyle.Render(content)
}

// matchIndicator shows whether the hunk was located in its tree(s)
func (m Model) matchIndicator(hunk *Hunk) string {
	h := hunk.Highlight
	if h == nil {
		return subtleStyle.Render("·")
	}
	if h.BeforeMatched || h.AfterMatched {
		return locatedStyle.Render("✓")
	}
	return unlocatedStyle.Render("✗")
}

func (m Model) renderDetailPanel(width, height int) string {
	internalHeight := panelContentHeight(height)

	allLines := m.detailLines(width)
	start, end := visibleRange(m.detailScroll, internalHeight, len(allLines))

	var lines []string
	if start < end {
		lines = allLines[start:end]
	}
	for len(lines) < internalHeight {
		lines = append(lines, "")
	}

	content := strings.Join(lines, "\n")

	panelStyle := panelBaseStyle.
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height)

	if m.panel == DetailPanel {
		panelStyle = panelStyle.BorderForeground(colorBlue)
	}

	return panelStyle.Render(content)
}

// detailLines renders the selected hunk's full detail: words, contexts,
// match outcome with scores, and the annotated excerpt.
func (m Model) detailLines(width int) []string {
	hunk := m.selectedHunk()
	if hunk == nil {
		return []string{panelInfoStyle.Render("Select a change to view details")}
	}

	wrapWidth := max(10, width-4)
	var lines []string

	label := func(name, value string) {
		lines = append(lines, detailLabelStyle.Render(name+": ")+detailValueStyle.Render(value))
	}

	label("Status", hunk.Status.String())
	if len(hunk.BeforeWords) > 0 {
		label("Before", joinWords(hunk.BeforeWords))
	}
	if len(hunk.AfterWords) > 0 {
		label("After", joinWords(hunk.AfterWords))
	}

	contextBefore, contextAfter := hunkContext(hunk)
	if contextBefore != "" || contextAfter != "" {
		label("Context", contextBefore+" [...] "+contextAfter)
	}

	h := hunk.Highlight
	if h == nil {
		lines = append(lines, panelInfoStyle.Render("Not annotated"))
		return lines
	}

	side := "before tree"
	match := h.Before
	matched := h.BeforeMatched
	excerpt := h.BeforeExcerpt
	if m.detailSide == AfterSide {
		side = "after tree"
		match = h.After
		matched = h.AfterMatched
		excerpt = h.AfterExcerpt
	}

	lines = append(lines, "")
	lines = append(lines, detailLabelStyle.Render("Match in "+side+" (press s to switch)"))

	diag := match.Diagnostics
	if matched {
		lines = append(lines, locatedStyle.Render("located")+
			detailScoreStyle.Render(fmt.Sprintf("  best score %.3f", diag.BestScore)))
	} else if diag.Reason != "" {
		lines = append(lines, unlocatedStyle.Render("not located: "+diag.Reason)+
			detailScoreStyle.Render(fmt.Sprintf("  best score %.3f", diag.BestScore)))
	} else {
		lines = append(lines, panelInfoStyle.Render("no search on this side"))
	}

	if diag.Considered > 0 {
		label("Candidates", fmt.Sprintf("%d considered", diag.Considered))
	}
	if diag.GroupCount > 0 {
		label("Groups", fmt.Sprintf("%d assembled", diag.GroupCount))
	}
	if diag.Ambiguous {
		lines = append(lines, panelInfoStyle.Render("tie broken by document order"))
	}
	if match.Group != nil {
		label("Group size", fmt.Sprintf("%d leaves", len(match.Group.Leaves)))
	}

	for _, c := range diag.Candidates {
		lines = append(lines, subtleStyle.Render(fmt.Sprintf("  %.3f = %.3f + 0.5*%.3f  %s",
			c.FinalScore, c.BasicSimilarity, c.ContextScore, truncate(c.Text, 40))))
	}

	if excerpt != "" {
		lines = append(lines, "")
		lines = append(lines, detailLabelStyle.Render("Annotated excerpt"))
		for _, raw := range wrapText(excerpt, wrapWidth) {
			lines = append(lines, m.highlighter.Highlight(raw))
		}
	}

	return lines
}

func (m Model) renderFooter() string {
	help := []string{
		footerKeyStyle.Render("[↑↓]") + " Navigate",
		footerKeyStyle.Render("[Tab]") + " Switch Panel",
		footerKeyStyle.Render("[s]") + " Before/After",
		footerKeyStyle.Render("[r]") + " Rerun",
		footerKeyStyle.Render("[q]") + " Quit",
	}

	if m.panel == DetailPanel {
		totalLines := m.detailLineCount()
		if totalLines > 0 {
			scrollPercent := (m.detailScroll * 100) / totalLines
			help = append(help, footerScrollStyle.Render(fmt.Sprintf("Scroll: %d%%", scrollPercent)))
		}
	}

	return footerBaseStyle.Render(strings.Join(help, " • "))
}

// wrapText hard-wraps a string to the given rune width
func wrapText(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var lines []string
	runes := []rune(s)
	for len(runes) > width {
		lines = append(lines, string(runes[:width]))
		runes = runes[width:]
	}
	lines = append(lines, string(runes))
	return lines
}

// renderHelpModal renders the help modal overlay
func (m Model) renderHelpModal() string {
	return m.renderHelp()
}
