package main

import (
	"github.com/pmezard/go-difflib/difflib"
)

// contextWords is how many words of surrounding context each hunk keeps
// on both sides of the change.
const contextWords = 3

// HunkStatus classifies a hunk.
type HunkStatus int

const (
	StatusDelete HunkStatus = iota
	StatusInsert
	StatusReplace
)

// String returns the string representation of the hunk status
func (s HunkStatus) String() string {
	switch s {
	case StatusDelete:
		return "delete"
	case StatusInsert:
		return "insert"
	case StatusReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Span is a half-open character range into normalized document text.
type Span struct {
	Start int
	End   int
}

// Hunk is one contiguous word-level change between the two documents.
// Equal runs are never emitted. Word slices and contexts index into the
// normalized word sequences of the full documents.
type Hunk struct {
	Status      HunkStatus
	BeforeWords []string
	AfterWords  []string

	// Character offsets into the normalized before/after text, nil when
	// the word range falls outside the sequence.
	BeforeSpan *Span
	AfterSpan  *Span

	// Up to contextWords words immediately surrounding the hunk, clipped
	// at document boundaries.
	BeforeContextBefore []string
	BeforeContextAfter  []string
	AfterContextBefore  []string
	AfterContextAfter   []string

	// Highlight is attached by Annotate once the hunk has been located
	// in the trees. Nil until then.
	Highlight *HighlightResult
}

// BeforeText returns the hunk's before words joined with single spaces.
func (h *Hunk) BeforeText() string {
	return joinWords(h.BeforeWords)
}

// AfterText returns the hunk's after words joined with single spaces.
func (h *Hunk) AfterText() string {
	return joinWords(h.AfterWords)
}

// AnalyzeChanges computes the word-level diff between two documents'
// visible text. It normalizes both texts, splits them into words, and
// decomposes the edit script into hunks via difflib's opcode tags.
// Identical documents yield no hunks.
func AnalyzeChanges(beforeText, afterText string) []Hunk {
	beforeNorm := NormalizeText(beforeText)
	afterNorm := NormalizeText(afterText)
	beforeWords := splitWords(beforeNorm)
	afterWords := splitWords(afterNorm)

	matcher := difflib.NewMatcher(beforeWords, afterWords)

	var hunks []Hunk
	for _, op := range matcher.GetOpCodes() {
		var status HunkStatus
		switch op.Tag {
		case 'e':
			continue
		case 'd':
			status = StatusDelete
		case 'i':
			status = StatusInsert
		case 'r':
			status = StatusReplace
		default:
			continue
		}

		hunks = append(hunks, Hunk{
			Status:              status,
			BeforeWords:         sliceWords(beforeWords, op.I1, op.I2),
			AfterWords:          sliceWords(afterWords, op.J1, op.J2),
			BeforeSpan:          wordSpan(beforeWords, op.I1, op.I2),
			AfterSpan:           wordSpan(afterWords, op.J1, op.J2),
			BeforeContextBefore: contextBefore(beforeWords, op.I1),
			BeforeContextAfter:  contextAfter(beforeWords, op.I2),
			AfterContextBefore:  contextBefore(afterWords, op.J1),
			AfterContextAfter:   contextAfter(afterWords, op.J2),
		})
	}
	return hunks
}

func sliceWords(words []string, start, end int) []string {
	if start >= end {
		return nil
	}
	out := make([]string, end-start)
	copy(out, words[start:end])
	return out
}

// wordSpan converts a word index range into character offsets in the
// normalized text. The offset math mirrors how normalization joins words
// with single spaces, so spans stay aligned with the normalized text.
func wordSpan(words []string, start, end int) *Span {
	if start >= len(words) || end > len(words) {
		return nil
	}

	prefix := joinWords(words[:start])
	startPos := len(prefix)
	if prefix != "" {
		startPos++
	}
	endPos := startPos + len(joinWords(words[start:end]))
	return &Span{Start: startPos, End: endPos}
}

func contextBefore(words []string, idx int) []string {
	if idx <= 0 {
		return nil
	}
	start := max(0, idx-contextWords)
	return sliceWords(words, start, idx)
}

func contextAfter(words []string, idx int) []string {
	end := min(len(words), idx+contextWords)
	return sliceWords(words, idx, end)
}
