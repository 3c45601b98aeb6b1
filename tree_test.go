package main

import (
	"strings"
	"testing"
)

const sampleTable = `<html><body>
<table>
<tr><td>Host</td><td>CPU</td><td>Memory</td></tr>
<tr><td>web-1</td><td>45%</td><td>2.1 GB</td></tr>
</table>
<script>var hidden = "secret";</script>
<style>.x { color: red; }</style>
</body></html>`

func TestParseDocument_RoundTrip(t *testing.T) {
	doc, err := ParseDocument("<p>hello <b>world</b></p>")
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}

	markup, err := doc.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !containsAll(markup, "<p>", "hello", "<b>world</b>") {
		t.Fatalf("rendered markup lost content: %q", markup)
	}
}

func TestVisibleText_ExcludesScriptAndStyle(t *testing.T) {
	doc, err := ParseDocument(sampleTable)
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}

	text := doc.VisibleText()
	if !containsAll(text, "Host", "web-1", "2.1 GB") {
		t.Fatalf("visible text missing cell content: %q", text)
	}
	if containsAny(text, "secret", "color: red") {
		t.Fatalf("visible text leaked non-content: %q", text)
	}
}

func TestTextLeaves_DocumentOrder(t *testing.T) {
	doc, err := ParseDocument(sampleTable)
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}

	leaves := doc.TextLeaves()
	want := []string{"Host", "CPU", "Memory", "web-1", "45%", "2.1 GB"}
	if len(leaves) != len(want) {
		t.Fatalf("leaf count = %d, want %d", len(leaves), len(want))
	}
	for i, w := range want {
		if leaves[i].Text() != w {
			t.Fatalf("leaf %d = %q, want %q", i, leaves[i].Text(), w)
		}
	}
}

func TestTextLeaf_Ancestry(t *testing.T) {
	doc, err := ParseDocument(sampleTable)
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}

	leaves := doc.TextLeaves()
	cpu := leaves[1]
	if cpu.Text() != "CPU" {
		t.Fatalf("unexpected leaf order, got %q", cpu.Text())
	}

	container := cpu.Container()
	if container == nil || container.Data != "td" {
		t.Fatalf("container = %v, want td element", container)
	}
	row := cpu.RowContainer()
	if row == nil || row.Data != "tr" {
		t.Fatalf("row container = %v, want tr element", row)
	}
	if got := cpu.ContainerText(); got != "CPU" {
		t.Fatalf("container text = %q", got)
	}

	// Leaves in the same row share a row container; leaves across rows
	// do not.
	host := leaves[0]
	if host.RowContainer() != row {
		t.Fatal("same-row leaves report different row containers")
	}
	web := leaves[3]
	if web.RowContainer() == row {
		t.Fatal("cross-row leaves share a row container")
	}
}

func TestRowLeavesAndCells(t *testing.T) {
	doc, err := ParseDocument(sampleTable)
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}

	leaves := doc.TextLeaves()
	row := doc.rowLeaves(leaves[0])
	if len(row) != 3 {
		t.Fatalf("row leaf count = %d, want 3", len(row))
	}

	cells := rowCells(leaves[0].RowContainer())
	if len(cells) != 3 {
		t.Fatalf("cell count = %d, want 3", len(cells))
	}
	if idx := cellIndex(cells, leaves[1].Container()); idx != 1 {
		t.Fatalf("cell index = %d, want 1", idx)
	}
	if idx := cellIndex(cells, leaves[3].Container()); idx != -1 {
		t.Fatalf("cross-row cell index = %d, want -1", idx)
	}
}

func TestTextLeaves_ReindexAfterMutation(t *testing.T) {
	doc, err := ParseDocument("<p>alpha</p><p>beta</p>")
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}

	before := doc.TextLeaves()
	if len(before) != 2 {
		t.Fatalf("leaf count = %d, want 2", len(before))
	}

	applyLeafHighlight(before[0], ClassRemoved, "change 1: removed: alpha")

	after := doc.TextLeaves()
	// The marker span adds a tooltip leaf next to the preserved text.
	if len(after) != 3 {
		t.Fatalf("leaf count after mutation = %d, want 3", len(after))
	}
	if after[0].Text() != "alpha" {
		t.Fatalf("first leaf after mutation = %q", after[0].Text())
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
