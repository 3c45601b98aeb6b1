package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case comparisonLoadedMsg:
		m.hunks = msg.hunks
		if m.selectedIndex >= len(m.hunks) {
			m.selectedIndex = max(0, len(m.hunks)-1)
		}
		m.detailScroll = 0
		m.err = nil
		return m, nil

	case FSChangeMsg:
		// Inputs changed on disk: rerun the comparison and keep watching
		cmds := []tea.Cmd{m.runComparison()}
		if m.watcher != nil {
			cmds = append(cmds, m.watcher.WaitForChange())
		}
		return m, tea.Batch(cmds...)

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			m.showHelp = false
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.panel == DetailPanel {
			m.moveDetailUp()
		} else {
			m.moveUp()
		}

	case "down", "j":
		if m.panel == DetailPanel {
			m.moveDetailDown()
		} else {
			m.moveDown()
		}

	case "pgup":
		m.pageMove(-m.pageSize())

	case "pgdown":
		m.pageMove(m.pageSize())

	case "tab":
		if m.panel == HunkListPanel {
			m.panel = DetailPanel
		} else {
			m.panel = HunkListPanel
		}

	case "s":
		// Toggle which tree's match the detail panel shows
		if m.detailSide == BeforeSide {
			m.detailSide = AfterSide
		} else {
			m.detailSide = BeforeSide
		}
		m.detailScroll = 0

	case "r":
		return m, m.runComparison()

	case "?":
		m.showHelp = true
	}

	return m, nil
}

// moveUp moves the hunk selection up
func (m *Model) moveUp() {
	if m.selectedIndex > 0 {
		m.selectedIndex--
		m.detailScroll = 0

		if m.selectedIndex < m.scrollOffset {
			m.scrollOffset = m.selectedIndex
		}
	}
}

// moveDown moves the hunk selection down
func (m *Model) moveDown() {
	if m.selectedIndex < len(m.hunks)-1 {
		m.selectedIndex++
		m.detailScroll = 0

		visibleHeight := m.listHeight()
		if m.selectedIndex >= m.scrollOffset+visibleHeight {
			m.scrollOffset = m.selectedIndex - visibleHeight + 1
		}
	}
}

func (m *Model) pageMove(delta int) {
	if m.panel == DetailPanel {
		m.detailScroll = clamp(m.detailScroll+delta, 0, max(0, m.detailLineCount()-1))
		return
	}
	m.selectedIndex = clamp(m.selectedIndex+delta, 0, max(0, len(m.hunks)-1))
	m.scrollOffset = clamp(m.scrollOffset+delta, 0, max(0, len(m.hunks)-m.listHeight()))
	m.detailScroll = 0
}

// moveDetailUp scrolls the detail view up
func (m *Model) moveDetailUp() {
	if m.detailScroll > 0 {
		m.detailScroll--
	}
}

// moveDetailDown scrolls the detail view down
func (m *Model) moveDetailDown() {
	totalLines := m.detailLineCount()
	if m.detailScroll < totalLines-m.listHeight() {
		m.detailScroll++
	}
}

func (m *Model) pageSize() int {
	return max(1, m.listHeight()-1)
}

func (m *Model) listHeight() int {
	return panelContentHeight(contentHeight(m.height))
}

// detailLineCount returns the number of rendered lines in the current
// detail view, used to bound scrolling
func (m *Model) detailLineCount() int {
	return len(m.detailLines(detailPanelWidth(m.width)))
}
