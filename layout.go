package main

// Layout constants for the TUI
const (
	// Header and footer dimensions
	headerRows = 2 // Number of rows for header (title + separator)
	footerRows = 1 // Number of rows for footer

	// Panel layout
	panelBorderRows    = 2 // Rows consumed by panel borders (top + bottom)
	hunkListWidthRatio = 3 // Hunk list gets 1/hunkListWidthRatio of total width

	// Hunk list formatting
	hunkPreviewWidth = 30 // Max characters of word preview per list entry

	// Help modal dimensions
	helpModalMaxWidth  = 60 // Maximum width of help modal
	helpModalMaxHeight = 30 // Maximum height of help modal
	helpModalPadding   = 4  // Padding around help modal (2 on each side)
)

// contentHeight calculates the available content height
func contentHeight(totalHeight int) int {
	return max(1, totalHeight-headerRows-footerRows)
}

// hunkListWidth calculates the width for the hunk list panel
func hunkListWidth(totalWidth int) int {
	return totalWidth / hunkListWidthRatio
}

// detailPanelWidth calculates the width for the detail panel
func detailPanelWidth(totalWidth int) int {
	return totalWidth - hunkListWidth(totalWidth)
}

// helpModalDimensions calculates the dimensions for the help modal
func helpModalDimensions(screenWidth, screenHeight int) (width, height int) {
	width = min(helpModalMaxWidth, screenWidth-helpModalPadding)
	height = min(helpModalMaxHeight, screenHeight-helpModalPadding)
	return width, height
}
