package main

import (
	"strings"
	"testing"
)

func TestCompare_EndToEnd(t *testing.T) {
	before := `<html><body>
<h1>Server Report</h1>
<p>All systems nominal today.</p>
<table><tr><td>CPU</td><td>45%</td></tr></table>
</body></html>`
	after := `<html><body>
<h1>Server Report</h1>
<p>All systems degraded today.</p>
<table><tr><td>CPU</td><td>91%</td></tr></table>
</body></html>`

	comparator := NewComparator(testLogger())
	cmp, err := comparator.Compare(before, after)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	if len(cmp.Hunks) == 0 {
		t.Fatal("expected hunks for differing documents")
	}
	for i, h := range cmp.Hunks {
		if h.Highlight == nil {
			t.Fatalf("hunk %d has no highlight result", i)
		}
	}

	beforeMarkup, err := cmp.BeforeDoc.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	afterMarkup, err := cmp.AfterDoc.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(beforeMarkup, "highlight-modified") {
		t.Fatalf("before tree not annotated: %q", beforeMarkup)
	}
	if !strings.Contains(afterMarkup, "highlight-modified") {
		t.Fatalf("after tree not annotated: %q", afterMarkup)
	}
	// Unchanged content survives annotation on both sides.
	if !containsAll(beforeMarkup, "Server Report", "CPU") {
		t.Fatalf("before tree lost content: %q", beforeMarkup)
	}
	if !containsAll(afterMarkup, "Server Report", "CPU") {
		t.Fatalf("after tree lost content: %q", afterMarkup)
	}
}

func TestCompare_IdenticalDocuments(t *testing.T) {
	markup := "<html><body><p>stable content</p></body></html>"

	comparator := NewComparator(testLogger())
	cmp, err := comparator.Compare(markup, markup)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if len(cmp.Hunks) != 0 {
		t.Fatalf("expected no hunks, got %d", len(cmp.Hunks))
	}

	rendered, err := cmp.BeforeDoc.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(rendered, "highlight-") {
		t.Fatalf("identical documents got annotated: %q", rendered)
	}
}

func TestCompare_UnlocatableHunkLeavesTreesIntact(t *testing.T) {
	// The changed word sits inside a larger leaf on both sides; a very
	// strict threshold rejects every candidate.
	before := "<p>alpha beta gamma delta epsilon</p>"
	after := "<p>alpha beta OMEGA delta epsilon</p>"

	comparator := NewComparatorWithThreshold(0.99, testLogger())
	cmp, err := comparator.Compare(before, after)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if len(cmp.Hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(cmp.Hunks))
	}

	h := cmp.Hunks[0].Highlight
	if h == nil {
		t.Fatal("highlight result missing")
	}
	if h.BeforeMatched || h.AfterMatched {
		t.Fatalf("expected no match under strict threshold: %+v", h)
	}

	rendered, err := cmp.BeforeDoc.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(rendered, "highlight-") {
		t.Fatalf("unlocated hunk still mutated the tree: %q", rendered)
	}
}

func TestCompare_DeleteAndInsertSidedness(t *testing.T) {
	before := "<p>one</p><p>obsolete paragraph</p><p>two</p>"
	after := "<p>one</p><p>two</p><p>fresh content</p>"

	comparator := NewComparator(testLogger())
	cmp, err := comparator.Compare(before, after)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	var sawDelete, sawInsert bool
	for _, h := range cmp.Hunks {
		switch h.Status {
		case StatusDelete:
			sawDelete = true
			if !h.Highlight.BeforeMatched {
				t.Fatalf("delete hunk not located in before tree: %+v", h.Highlight.Before.Diagnostics)
			}
			if h.Highlight.AfterMatched {
				t.Fatal("delete hunk marked the after tree")
			}
		case StatusInsert:
			sawInsert = true
			if !h.Highlight.AfterMatched {
				t.Fatalf("insert hunk not located in after tree: %+v", h.Highlight.After.Diagnostics)
			}
			if h.Highlight.BeforeMatched {
				t.Fatal("insert hunk marked the before tree")
			}
		}
	}
	if !sawDelete || !sawInsert {
		t.Fatalf("expected a delete and an insert, got %+v", cmp.Hunks)
	}

	beforeMarkup, _ := cmp.BeforeDoc.Render()
	afterMarkup, _ := cmp.AfterDoc.Render()
	if !strings.Contains(beforeMarkup, "highlight-removed") {
		t.Fatalf("removed marker missing: %q", beforeMarkup)
	}
	if !strings.Contains(afterMarkup, "highlight-added") {
		t.Fatalf("added marker missing: %q", afterMarkup)
	}
}

func TestBuildComparisonPage(t *testing.T) {
	comparator := NewComparator(testLogger())
	cmp, err := comparator.Compare(
		"<p>old text</p>",
		"<p>new text</p>",
	)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	page, err := BuildComparisonPage(cmp, "v1.html", "v2.html")
	if err != nil {
		t.Fatalf("BuildComparisonPage() error = %v", err)
	}

	if !containsAll(page, "v1.html", "v2.html") {
		t.Fatal("page missing side titles")
	}
	if !containsAll(page, "html-comparison-container", "html-side") {
		t.Fatal("page missing layout containers")
	}
	if !strings.Contains(page, ".highlight-modified") {
		t.Fatal("page missing marker stylesheet")
	}
}
