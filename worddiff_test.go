package main

import (
	"reflect"
	"testing"
)

func TestAnalyzeChanges_IdenticalTextsYieldNoHunks(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"
	if hunks := AnalyzeChanges(text, text); len(hunks) != 0 {
		t.Fatalf("expected no hunks, got %d", len(hunks))
	}
}

func TestAnalyzeChanges_SingleWordReplace(t *testing.T) {
	hunks := AnalyzeChanges(
		"the quick brown fox jumps",
		"the quick red fox jumps",
	)
	if len(hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(hunks))
	}

	h := hunks[0]
	if h.Status != StatusReplace {
		t.Fatalf("status = %v, want replace", h.Status)
	}
	if got := h.BeforeText(); got != "brown" {
		t.Fatalf("before text = %q, want %q", got, "brown")
	}
	if got := h.AfterText(); got != "red" {
		t.Fatalf("after text = %q, want %q", got, "red")
	}
	if !reflect.DeepEqual(h.BeforeContextBefore, []string{"the", "quick"}) {
		t.Fatalf("before context = %v", h.BeforeContextBefore)
	}
	if !reflect.DeepEqual(h.BeforeContextAfter, []string{"fox", "jumps"}) {
		t.Fatalf("after context = %v", h.BeforeContextAfter)
	}
}

func TestAnalyzeChanges_DeleteAndInsert(t *testing.T) {
	testCases := []struct {
		name       string
		before     string
		after      string
		wantStatus HunkStatus
		wantBefore string
		wantAfter  string
	}{
		{
			name:       "deletion",
			before:     "alpha beta gamma delta",
			after:      "alpha delta",
			wantStatus: StatusDelete,
			wantBefore: "beta gamma",
			wantAfter:  "",
		},
		{
			name:       "insertion",
			before:     "alpha delta",
			after:      "alpha beta gamma delta",
			wantStatus: StatusInsert,
			wantBefore: "",
			wantAfter:  "beta gamma",
		},
		{
			name:       "insertion at end",
			before:     "alpha beta",
			after:      "alpha beta gamma",
			wantStatus: StatusInsert,
			wantBefore: "",
			wantAfter:  "gamma",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			hunks := AnalyzeChanges(tc.before, tc.after)
			if len(hunks) != 1 {
				t.Fatalf("expected 1 hunk, got %d", len(hunks))
			}
			h := hunks[0]
			if h.Status != tc.wantStatus {
				t.Fatalf("status = %v, want %v", h.Status, tc.wantStatus)
			}
			if got := h.BeforeText(); got != tc.wantBefore {
				t.Fatalf("before text = %q, want %q", got, tc.wantBefore)
			}
			if got := h.AfterText(); got != tc.wantAfter {
				t.Fatalf("after text = %q, want %q", got, tc.wantAfter)
			}
		})
	}
}

func TestAnalyzeChanges_SpansIndexNormalizedText(t *testing.T) {
	before := "one  two three four"
	after := "one two 3 four"
	hunks := AnalyzeChanges(before, after)
	if len(hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(hunks))
	}

	h := hunks[0]
	beforeNorm := NormalizeText(before)
	afterNorm := NormalizeText(after)

	if h.BeforeSpan == nil {
		t.Fatal("before span is nil")
	}
	if got := beforeNorm[h.BeforeSpan.Start:h.BeforeSpan.End]; got != h.BeforeText() {
		t.Fatalf("before span selects %q, want %q", got, h.BeforeText())
	}
	if h.AfterSpan == nil {
		t.Fatal("after span is nil")
	}
	if got := afterNorm[h.AfterSpan.Start:h.AfterSpan.End]; got != h.AfterText() {
		t.Fatalf("after span selects %q, want %q", got, h.AfterText())
	}
}

func TestAnalyzeChanges_TrailingInsertHasNoBeforeSpan(t *testing.T) {
	hunks := AnalyzeChanges("alpha beta", "alpha beta gamma")
	if len(hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(hunks))
	}
	if hunks[0].BeforeSpan != nil {
		t.Fatalf("before span = %+v, want nil for insert past end", hunks[0].BeforeSpan)
	}
	if hunks[0].AfterSpan == nil {
		t.Fatal("after span is nil")
	}
}

func TestAnalyzeChanges_ContextClippedAtBoundaries(t *testing.T) {
	hunks := AnalyzeChanges("start middle end", "begin middle end")
	if len(hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(hunks))
	}
	h := hunks[0]
	if len(h.BeforeContextBefore) != 0 {
		t.Fatalf("context before document start = %v", h.BeforeContextBefore)
	}
	if !reflect.DeepEqual(h.BeforeContextAfter, []string{"middle", "end"}) {
		t.Fatalf("trailing context = %v", h.BeforeContextAfter)
	}
}

func TestAnalyzeChanges_HunksCoverAllChangedWords(t *testing.T) {
	before := "a b c d e f"
	after := "a X c d Y Z f"
	hunks := AnalyzeChanges(before, after)
	if len(hunks) != 2 {
		t.Fatalf("expected 2 hunks, got %d", len(hunks))
	}

	var removed, added []string
	for _, h := range hunks {
		removed = append(removed, h.BeforeWords...)
		added = append(added, h.AfterWords...)
	}
	if !reflect.DeepEqual(removed, []string{"b", "e"}) {
		t.Fatalf("removed words = %v", removed)
	}
	if !reflect.DeepEqual(added, []string{"X", "Y", "Z"}) {
		t.Fatalf("added words = %v", added)
	}
}
