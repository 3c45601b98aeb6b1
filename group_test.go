package main

import "testing"

const splitRowMarkup = `<table>
<tr><td>Label</td><td>Total:</td><td>42</td><td>items</td></tr>
<tr><td>Other</td><td>unrelated</td></tr>
</table>`

func TestLocateGroup_AssemblesSplitText(t *testing.T) {
	doc := mustParse(t, splitRowMarkup)
	loc := NewLocator(absoluteThreshold, testLogger())

	// No single leaf contains "Total: 42", so the group fallback has to
	// assemble it from adjacent cells.
	result := loc.Locate(doc, "Total: 42", "", "")
	if !result.Matched {
		t.Fatalf("expected group match, diagnostics: %+v", result.Diagnostics)
	}
	if result.Candidate != nil {
		t.Fatal("group match should not carry a single candidate")
	}
	if result.Group == nil {
		t.Fatal("matched without a group")
	}

	if result.Group.Text != "Total: 42" {
		t.Fatalf("group text = %q", result.Group.Text)
	}
	if len(result.Group.Leaves) != 2 {
		t.Fatalf("group size = %d, want 2", len(result.Group.Leaves))
	}
	if result.Group.BaseSimilarity != 1.0 {
		t.Fatalf("base similarity = %v, want 1.0", result.Group.BaseSimilarity)
	}
	if result.Diagnostics.GroupCount == 0 {
		t.Fatal("diagnostics did not record scored groups")
	}
}

func TestLocateGroup_UsesNeighboringCellContext(t *testing.T) {
	doc := mustParse(t, splitRowMarkup)
	loc := NewLocator(absoluteThreshold, testLogger())

	result := loc.Locate(doc, "Total: 42", "Label", "items")
	if !result.Matched {
		t.Fatalf("expected group match, diagnostics: %+v", result.Diagnostics)
	}
	g := result.Group
	if g.ContextScore != 1.0 {
		t.Fatalf("context score = %v, want 1.0 for exact neighbors", g.ContextScore)
	}
	want := g.BaseSimilarity*groupBaseWeight + g.ContextScore*groupContextWeight
	if g.FinalScore != want {
		t.Fatalf("final score = %v, want %v", g.FinalScore, want)
	}
}

func TestGroupAdjacentLeaves_SplitsAcrossRows(t *testing.T) {
	doc := mustParse(t, `<table>
<tr><td>a1</td><td>a2</td></tr>
<tr><td>b1</td></tr>
</table>`)

	groups := groupAdjacentLeaves(doc.TextLeaves())
	if len(groups) != 2 {
		t.Fatalf("group count = %d, want 2", len(groups))
	}
	if len(groups[0]) != 2 || len(groups[1]) != 1 {
		t.Fatalf("group sizes = %d/%d, want 2/1", len(groups[0]), len(groups[1]))
	}
}

func TestActualGroupContext(t *testing.T) {
	doc := mustParse(t, splitRowMarkup)
	leaves := doc.TextLeaves()

	// leaves: Label, Total:, 42, items, Other, unrelated
	group := []*TextLeaf{leaves[1], leaves[2]}
	before, after := actualGroupContext(group)
	if before != "Label" {
		t.Fatalf("before context = %q, want %q", before, "Label")
	}
	if after != "items" {
		t.Fatalf("after context = %q, want %q", after, "items")
	}

	// At the row boundary there is no neighbor.
	edge := []*TextLeaf{leaves[0]}
	before, after = actualGroupContext(edge)
	if before != "" {
		t.Fatalf("boundary before context = %q, want empty", before)
	}
	if after != "Total:" {
		t.Fatalf("boundary after context = %q", after)
	}
}

func TestPartialMatches_RequiresOverlapAndSimilarity(t *testing.T) {
	doc := mustParse(t, splitRowMarkup)
	loc := NewLocator(absoluteThreshold, testLogger())

	matches := loc.partialMatches(doc, "Total: 42")
	texts := make([]string, 0, len(matches))
	for _, m := range matches {
		texts = append(texts, m.Text())
	}
	if len(texts) != 2 || texts[0] != "Total:" || texts[1] != "42" {
		t.Fatalf("partial matches = %v, want [Total: 42]", texts)
	}
}
