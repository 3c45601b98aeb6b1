package main

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// SyntaxHighlighter colorizes the annotated markup excerpts shown in
// the detail panel.
type SyntaxHighlighter struct {
	style *chroma.Style
	lexer chroma.Lexer
}

// NewSyntaxHighlighter creates a highlighter for HTML excerpts
func NewSyntaxHighlighter() *SyntaxHighlighter {
	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	return &SyntaxHighlighter{
		style: style,
		lexer: lexers.Get("html"),
	}
}

// Highlight highlights one line of markup
func (h *SyntaxHighlighter) Highlight(line string) string {
	if h.lexer == nil {
		return line
	}

	iterator, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var result strings.Builder
	for _, token := range iterator.Tokens() {
		result.WriteString(h.styleToken(token))
	}

	return result.String()
}

// styleToken applies lipgloss styling to a chroma token
func (h *SyntaxHighlighter) styleToken(token chroma.Token) string {
	content := token.Value
	entry := h.style.Get(token.Type)

	if entry == (chroma.StyleEntry{}) {
		return content
	}

	style := lipgloss.NewStyle()

	if entry.Colour.IsSet() {
		color := entry.Colour.String()
		if strings.HasPrefix(color, "#") {
			style = style.Foreground(lipgloss.Color(color))
		}
	}

	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	return style.Render(content)
}
