package main

import (
	"bytes"
	"errors"
	"strings"

	"golang.org/x/net/html"
)

// Document wraps a parsed HTML tree. A Document is owned by one
// comparison run and is mutated in place as highlights are applied.
type Document struct {
	root *html.Node
}

// ParseDocument parses HTML markup into a Document. The parser is
// error-recovering, so malformed markup still yields a tree; only an
// unusable root is fatal.
func ParseDocument(markup string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, errors.New("parse produced no document root")
	}
	return &Document{root: root}, nil
}

// Render serializes the tree back to markup text.
func (d *Document) Render() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// VisibleText extracts the document's visible text: all text content
// outside script/style, concatenated in document order and normalized.
func (d *Document) VisibleText() string {
	var buf strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && isNonContentTag(n.Data) {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return NormalizeText(buf.String())
}

// TextLeaf is a text-bearing node with its normalized content. The leaf
// holds a non-owning reference into the tree for ancestry lookups; it is
// valid only until the tree is next mutated.
type TextLeaf struct {
	node *html.Node
	text string
}

// Text returns the leaf's normalized content.
func (l *TextLeaf) Text() string { return l.text }

// Container returns the element directly containing the leaf, or nil.
func (l *TextLeaf) Container() *html.Node {
	if l.node.Parent != nil && l.node.Parent.Type == html.ElementNode {
		return l.node.Parent
	}
	return nil
}

// RowContainer returns the leaf's row-like container: the element two
// levels up, grouping the leaf's cell with its sibling cells. Markup
// vocabulary is not consulted; any grandparent element qualifies.
func (l *TextLeaf) RowContainer() *html.Node {
	container := l.Container()
	if container == nil {
		return nil
	}
	if container.Parent != nil && container.Parent.Type == html.ElementNode {
		return container.Parent
	}
	return nil
}

// ContainerText returns the normalized text of the leaf's container.
func (l *TextLeaf) ContainerText() string {
	container := l.Container()
	if container == nil {
		return ""
	}
	return nodeText(container)
}

// TextLeaves walks the tree and returns every text-bearing leaf in
// document order, excluding script/style content and whitespace-only
// nodes. The index is rebuilt on every call: earlier highlights mutate
// the tree, so cached leaves would go stale.
func (d *Document) TextLeaves() []*TextLeaf {
	var leaves []*TextLeaf
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && isNonContentTag(n.Data) {
			return
		}
		if n.Type == html.TextNode {
			if text := NormalizeText(n.Data); text != "" {
				leaves = append(leaves, &TextLeaf{node: n, text: text})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return leaves
}

// rowLeaves returns all leaves sharing the given leaf's row container,
// in document order, including the leaf itself. Empty when the leaf has
// no row container.
func (d *Document) rowLeaves(leaf *TextLeaf) []*TextLeaf {
	row := leaf.RowContainer()
	if row == nil {
		return nil
	}
	var leaves []*TextLeaf
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && isNonContentTag(n.Data) {
			return
		}
		if n.Type == html.TextNode {
			if text := NormalizeText(n.Data); text != "" {
				leaves = append(leaves, &TextLeaf{node: n, text: text})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(row)
	return leaves
}

// rowCells returns the element children of a row container, the
// "cells" that group context lookups index into.
func rowCells(row *html.Node) []*html.Node {
	var cells []*html.Node
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			cells = append(cells, c)
		}
	}
	return cells
}

// cellIndex returns the position of cell among row's element children,
// or -1 when it is not a direct child.
func cellIndex(cells []*html.Node, cell *html.Node) int {
	for i, c := range cells {
		if c == cell {
			return i
		}
	}
	return -1
}

// nodeText returns the normalized visible text under a node.
func nodeText(n *html.Node) string {
	var buf strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && isNonContentTag(n.Data) {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return NormalizeText(buf.String())
}

func isNonContentTag(tag string) bool {
	return tag == "script" || tag == "style"
}
