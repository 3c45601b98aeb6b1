package main

import (
	"sort"
	"strings"
)

// absoluteThreshold is the minimum final score a candidate or group must
// reach to count as a located match. The same threshold gates content
// scores, content+context scores and group scores.
const absoluteThreshold = 0.2

// contextBonusWeight scales the context score added on top of content
// similarity for containing candidates. Exact containment carries most
// of the evidence; context only breaks ties between repeated text.
const contextBonusWeight = 0.5

// Rejection reasons recorded in match diagnostics.
const (
	reasonEmptyTarget    = "empty target text"
	reasonBelowThreshold = "below threshold"
	reasonNoGroup        = "no acceptable group"
)

// Candidate is a scored location hypothesis: a single leaf whose text
// contains the target verbatim.
type Candidate struct {
	Leaf            *TextLeaf
	Text            string
	BasicSimilarity float64
	ContextScore    float64
	FinalScore      float64
}

// CandidateScore is the diagnostic record kept for every candidate
// considered during a locate attempt.
type CandidateScore struct {
	Text            string
	BasicSimilarity float64
	ContextScore    float64
	FinalScore      float64
}

// MatchDiagnostics describes how a locate attempt went, matched or not.
type MatchDiagnostics struct {
	TargetText string
	Considered int     // candidate leaves scored
	GroupCount int     // groups scored by the fallback (0 when unused)
	BestScore  float64 // best final score seen
	Reason     string  // rejection reason, empty on success
	Ambiguous  bool    // top score shared by more than one candidate
	Candidates []CandidateScore
}

// MatchResult is the outcome of locating a target text in a tree.
// Exactly one of Candidate/Group is set when Matched is true; the
// diagnostics are always populated.
type MatchResult struct {
	Matched     bool
	Candidate   *Candidate
	Group       *LeafGroup
	Diagnostics MatchDiagnostics
}

// Locator finds the tree position of a hunk's text using content
// similarity plus surrounding-context evidence.
type Locator struct {
	threshold float64
	logger    *Logger
}

// NewLocator creates a locator with the given acceptance threshold.
func NewLocator(threshold float64, logger *Logger) *Locator {
	return &Locator{threshold: threshold, logger: logger}
}

// Locate finds the best-scoring leaf whose text contains targetText.
// Context strings are optional; when present they add a tie-breaking
// bonus to each candidate's score. When no leaf contains the target at
// all, the sequence-group fallback takes over.
func (loc *Locator) Locate(doc *Document, targetText, contextBefore, contextAfter string) MatchResult {
	target := NormalizeText(targetText)
	if target == "" {
		return MatchResult{Diagnostics: MatchDiagnostics{Reason: reasonEmptyTarget}}
	}

	diag := MatchDiagnostics{TargetText: target}

	var candidates []Candidate
	for _, leaf := range doc.TextLeaves() {
		if !strings.Contains(leaf.Text(), target) {
			continue
		}

		basic := TextSimilarity(leaf.Text(), target)
		contextScore := 0.0
		if contextBefore != "" || contextAfter != "" {
			contextScore = loc.contextMatchScore(doc, leaf, target, contextBefore, contextAfter)
		}
		final := basic + contextScore*contextBonusWeight

		loc.logger.Debug("candidate scored", map[string]any{
			"leaf":    truncate(leaf.Text(), 50),
			"basic":   basic,
			"context": contextScore,
			"final":   final,
		})

		candidates = append(candidates, Candidate{
			Leaf:            leaf,
			Text:            leaf.Text(),
			BasicSimilarity: basic,
			ContextScore:    contextScore,
			FinalScore:      final,
		})
	}

	if len(candidates) == 0 {
		return loc.locateGroup(doc, target, contextBefore, contextAfter)
	}

	// Stable sort keeps document order for equal scores; the first leaf
	// encountered wins ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].FinalScore > candidates[j].FinalScore
	})

	diag.Considered = len(candidates)
	diag.BestScore = candidates[0].FinalScore
	diag.Ambiguous = len(candidates) > 1 && candidates[1].FinalScore == candidates[0].FinalScore
	for _, c := range candidates {
		diag.Candidates = append(diag.Candidates, CandidateScore{
			Text:            c.Text,
			BasicSimilarity: c.BasicSimilarity,
			ContextScore:    c.ContextScore,
			FinalScore:      c.FinalScore,
		})
	}

	best := candidates[0]
	if best.FinalScore < loc.threshold {
		diag.Reason = reasonBelowThreshold
		return MatchResult{Diagnostics: diag}
	}

	return MatchResult{Matched: true, Candidate: &best, Diagnostics: diag}
}

// contextMatchScore scores how well the leaf's surroundings agree with
// the stored context. The leaf's row text (all leaves under its row
// container, or its own container text when no row exists) is compared
// against each supplied context and against the full
// "before target after" pattern. The weighted sum is clamped to [0, 1].
func (loc *Locator) contextMatchScore(doc *Document, leaf *TextLeaf, targetText, contextBefore, contextAfter string) float64 {
	const (
		beforeWeight  = 0.3
		afterWeight   = 0.3
		patternWeight = 0.4
	)

	rowText := ""
	if row := doc.rowLeaves(leaf); len(row) > 0 {
		parts := make([]string, 0, len(row))
		for _, l := range row {
			parts = append(parts, l.Text())
		}
		rowText = joinWords(parts)
	} else {
		rowText = leaf.ContainerText()
	}
	if rowText == "" {
		return 0.0
	}

	score := 0.0
	if contextBefore != "" {
		score += TextSimilarity(rowText, contextBefore) * beforeWeight
	}
	if contextAfter != "" {
		score += TextSimilarity(rowText, contextAfter) * afterWeight
	}
	if contextBefore != "" && contextAfter != "" {
		pattern := contextBefore + " " + targetText + " " + contextAfter
		score += TextSimilarity(rowText, pattern) * patternWeight
	}

	return min(score, 1.0)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
