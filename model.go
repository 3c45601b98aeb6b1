package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Panel represents which panel is active
type Panel int

const (
	HunkListPanel Panel = iota
	DetailPanel
)

// DetailSide selects which tree's match the detail panel shows
type DetailSide int

const (
	BeforeSide DetailSide = iota
	AfterSide
)

// loadFunc returns the current before/after markup of the two inputs.
type loadFunc func() (before, after string, err error)

// Model holds the review UI state
type Model struct {
	load        loadFunc
	comparator  *Comparator
	logger      *Logger
	watcher     *Watcher
	highlighter *SyntaxHighlighter

	beforeLabel string
	afterLabel  string

	hunks         []Hunk
	selectedIndex int
	panel         Panel
	detailSide    DetailSide
	scrollOffset  int // hunk list scrolling
	detailScroll  int // detail panel scrolling
	width         int
	height        int
	showHelp      bool
	quitting      bool
	err           error
}

// NewModel creates a new model. The watcher may be nil when watch mode
// is off.
func NewModel(load loadFunc, comparator *Comparator, logger *Logger, watcher *Watcher, beforeLabel, afterLabel string) Model {
	return Model{
		load:        load,
		comparator:  comparator,
		logger:      logger,
		watcher:     watcher,
		highlighter: NewSyntaxHighlighter(),
		beforeLabel: beforeLabel,
		afterLabel:  afterLabel,
		panel:       HunkListPanel,
		detailSide:  BeforeSide,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.runComparison()}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.WaitForChange())
	}
	return tea.Batch(cmds...)
}

// runComparison loads both documents and runs the full pipeline
func (m Model) runComparison() tea.Cmd {
	return func() tea.Msg {
		before, after, err := m.load()
		if err != nil {
			return errMsg{err}
		}
		cmp, err := m.comparator.Compare(before, after)
		if err != nil {
			return errMsg{err}
		}
		return comparisonLoadedMsg{hunks: cmp.Hunks}
	}
}

// GetTotalStats returns hunk counts for the header: total hunks and how
// many were located in at least one tree.
func (m Model) GetTotalStats() (total, located int) {
	total = len(m.hunks)
	for i := range m.hunks {
		h := m.hunks[i].Highlight
		if h != nil && (h.BeforeMatched || h.AfterMatched) {
			located++
		}
	}
	return total, located
}

// selectedHunk returns the hunk under the cursor, or nil
func (m Model) selectedHunk() *Hunk {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.hunks) {
		return nil
	}
	return &m.hunks[m.selectedIndex]
}

// Messages

type comparisonLoadedMsg struct {
	hunks []Hunk
}

type errMsg struct {
	err error
}
