package main

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"
)

// Classification tags a located change for presentation.
type Classification int

const (
	ClassAdded Classification = iota
	ClassRemoved
	ClassModified
)

// CSSClass returns the marker class used in the annotated markup.
func (c Classification) CSSClass() string {
	switch c {
	case ClassAdded:
		return "highlight-added"
	case ClassRemoved:
		return "highlight-removed"
	case ClassModified:
		return "highlight-modified"
	default:
		return "highlight-modified"
	}
}

// String returns the string representation of the classification
func (c Classification) String() string {
	switch c {
	case ClassAdded:
		return "added"
	case ClassRemoved:
		return "removed"
	case ClassModified:
		return "modified"
	default:
		return "unknown"
	}
}

// HighlightResult records how a hunk was located and marked in the two
// trees. Attached to the hunk once per comparison run.
type HighlightResult struct {
	BeforeMatched bool
	AfterMatched  bool
	Before        MatchResult
	After         MatchResult

	// Annotated markup around each match, kept for review display.
	BeforeExcerpt string
	AfterExcerpt  string
}

// applyLeafHighlight replaces a matched leaf with a marker span carrying
// the classification class, the original text, and a tooltip describing
// the change. Returns the annotated markup around the match. The leaf is
// consumed: applying a highlight to the same leaf again is undefined.
func applyLeafHighlight(leaf *TextLeaf, class Classification, tooltip string) string {
	marker := newMarker(leaf.Text(), class, tooltip)
	parent := leaf.node.Parent
	replaceNode(leaf.node, marker)
	return renderExcerpt(parent, marker)
}

// applyGroupHighlight marks every member of a matched group, recording
// each member's position in its tooltip. Returns the annotated markup
// around the group's row.
func applyGroupHighlight(group *LeafGroup, class Classification, tooltip string) string {
	row := group.Leaves[0].RowContainer()
	parent := group.Leaves[0].node.Parent

	n := len(group.Leaves)
	var firstMarker *html.Node
	for i, leaf := range group.Leaves {
		memberTooltip := fmt.Sprintf("%s (%d/%d)", tooltip, i+1, n)
		marker := newMarker(leaf.Text(), class, memberTooltip)
		replaceNode(leaf.node, marker)
		if firstMarker == nil {
			firstMarker = marker
		}
	}

	if row != nil {
		return renderExcerpt(row, firstMarker)
	}
	return renderExcerpt(parent, firstMarker)
}

// newMarker builds the marker node: a span wrapping the original text
// unchanged, with a nested tooltip span.
func newMarker(text string, class Classification, tooltip string) *html.Node {
	marker := &html.Node{
		Type: html.ElementNode,
		Data: "span",
		Attr: []html.Attribute{{Key: "class", Val: class.CSSClass()}},
	}
	marker.AppendChild(&html.Node{Type: html.TextNode, Data: text})

	tip := &html.Node{
		Type: html.ElementNode,
		Data: "span",
		Attr: []html.Attribute{{Key: "class", Val: "highlight-tooltip"}},
	}
	tip.AppendChild(&html.Node{Type: html.TextNode, Data: tooltip})
	marker.AppendChild(tip)

	return marker
}

// replaceNode swaps old for replacement within old's parent.
func replaceNode(old, replacement *html.Node) {
	parent := old.Parent
	if parent == nil {
		return
	}
	parent.InsertBefore(replacement, old)
	parent.RemoveChild(old)
}

// renderExcerpt serializes the node enclosing a fresh marker, falling
// back to the marker itself when it has no parent.
func renderExcerpt(enclosing, marker *html.Node) string {
	target := enclosing
	if target == nil {
		target = marker
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, target); err != nil {
		return ""
	}
	return buf.String()
}
