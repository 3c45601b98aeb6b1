package main

import (
	"fmt"
	"strings"
)

// comparisonStyle is the stylesheet embedded in the generated page. The
// marker classes match what the annotator writes into the trees.
const comparisonStyle = `<style>
.html-comparison-container {
    display: flex;
    gap: 20px;
    margin: 20px 0;
}
.html-side {
    flex: 1;
    border: 1px solid #ddd;
    padding: 15px;
    border-radius: 5px;
    background: white;
}
.html-title {
    font-weight: bold;
    margin-bottom: 10px;
    padding: 8px;
    background-color: #f8f9fa;
    border-radius: 3px;
    color: #333;
}
.highlight-added {
    background-color: #d4edda !important;
    border: 3px solid #28a745 !important;
    padding: 4px !important;
    border-radius: 5px !important;
    position: relative !important;
    display: inline-block !important;
    margin: 2px !important;
    font-weight: bold !important;
}
.highlight-removed {
    background-color: #f8d7da !important;
    border: 3px solid #dc3545 !important;
    padding: 4px !important;
    border-radius: 5px !important;
    position: relative !important;
    display: inline-block !important;
    margin: 2px !important;
    font-weight: bold !important;
}
.highlight-modified {
    background-color: #fff3cd !important;
    border: 3px solid #ffc107 !important;
    padding: 4px !important;
    border-radius: 5px !important;
    position: relative !important;
    display: inline-block !important;
    margin: 2px !important;
    font-weight: bold !important;
}
.highlight-tooltip {
    position: absolute;
    background: rgba(0, 0, 0, 0.9);
    color: white;
    padding: 6px 10px;
    border-radius: 4px;
    font-size: 12px;
    white-space: nowrap;
    z-index: 9999;
    top: -35px;
    left: 0;
    opacity: 0;
    transition: opacity 0.3s;
    pointer-events: none;
}
.highlight-added:hover .highlight-tooltip,
.highlight-removed:hover .highlight-tooltip,
.highlight-modified:hover .highlight-tooltip {
    opacity: 1;
}
</style>`

// BuildComparisonPage renders both annotated trees into a side-by-side
// comparison page with the embedded stylesheet.
func BuildComparisonPage(cmp *Comparison, beforeTitle, afterTitle string) (string, error) {
	beforeMarkup, err := cmp.BeforeDoc.Render()
	if err != nil {
		return "", fmt.Errorf("render before document: %w", err)
	}
	afterMarkup, err := cmp.AfterDoc.Render()
	if err != nil {
		return "", fmt.Errorf("render after document: %w", err)
	}

	var page strings.Builder
	page.WriteString(comparisonStyle)
	page.WriteString("\n<div class=\"html-comparison-container\">\n")
	writeSide(&page, beforeTitle, beforeMarkup)
	writeSide(&page, afterTitle, afterMarkup)
	page.WriteString("</div>\n")
	return page.String(), nil
}

func writeSide(page *strings.Builder, title, markup string) {
	page.WriteString("    <div class=\"html-side\">\n")
	fmt.Fprintf(page, "        <div class=\"html-title\">%s</div>\n", title)
	page.WriteString("        <div>")
	page.WriteString(markup)
	page.WriteString("</div>\n    </div>\n")
}
