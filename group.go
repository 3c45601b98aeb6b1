package main

import "strings"

// Weights for group scoring once real context evidence exists. In
// repeated-vocabulary structures content similarity alone is a weak
// discriminator, so context dominates.
const (
	groupBaseWeight    = 0.2
	groupContextWeight = 0.8
)

// LeafGroup is a scored run of document-order-adjacent leaves sharing a
// row container, used when no single leaf contains the target.
type LeafGroup struct {
	Leaves         []*TextLeaf
	Text           string
	BaseSimilarity float64
	ContextScore   float64
	FinalScore     float64
}

// locateGroup is the fallback when the containment scan found nothing:
// it collects leaves that partially overlap the target, groups adjacent
// same-row leaves, and scores each group against the stored context.
func (loc *Locator) locateGroup(doc *Document, target, contextBefore, contextAfter string) MatchResult {
	diag := MatchDiagnostics{TargetText: target}

	partial := loc.partialMatches(doc, target)
	diag.Considered = len(partial)
	groups := groupAdjacentLeaves(partial)
	diag.GroupCount = len(groups)

	loc.logger.Debug("sequence fallback", map[string]any{
		"partial": len(partial),
		"groups":  len(groups),
	})

	// First best group in document order wins ties: scanning follows
	// document order and only a strictly higher score displaces a group.
	var best *LeafGroup
	bestScore := 0.0
	for _, leaves := range groups {
		group := loc.scoreGroup(doc, leaves, target, contextBefore, contextAfter)
		if group.FinalScore > bestScore {
			g := group
			best = &g
			bestScore = group.FinalScore
		}
	}
	diag.BestScore = bestScore

	if best == nil || bestScore < loc.threshold {
		if best == nil {
			diag.Reason = reasonNoGroup
		} else {
			diag.Reason = reasonBelowThreshold
		}
		return MatchResult{Diagnostics: diag}
	}

	return MatchResult{Matched: true, Group: best, Diagnostics: diag}
}

// partialMatches returns leaves overlapping the target: the leaf text is
// a substring of the target or vice versa, and similarity clears the
// acceptance threshold.
func (loc *Locator) partialMatches(doc *Document, target string) []*TextLeaf {
	var matches []*TextLeaf
	for _, leaf := range doc.TextLeaves() {
		text := leaf.Text()
		if !strings.Contains(target, text) && !strings.Contains(text, target) {
			continue
		}
		if TextSimilarity(text, target) >= loc.threshold {
			matches = append(matches, leaf)
		}
	}
	return matches
}

// groupAdjacentLeaves splits the document-ordered leaf list into maximal
// runs sharing the same row container. A leaf without a row container,
// or in a different row than its predecessor, starts a new group.
func groupAdjacentLeaves(leaves []*TextLeaf) [][]*TextLeaf {
	var groups [][]*TextLeaf
	var current []*TextLeaf

	for _, leaf := range leaves {
		if len(current) == 0 {
			current = append(current, leaf)
			continue
		}
		prevRow := current[len(current)-1].RowContainer()
		if prevRow != nil && leaf.RowContainer() == prevRow {
			current = append(current, leaf)
			continue
		}
		groups = append(groups, current)
		current = []*TextLeaf{leaf}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// scoreGroup computes the group's combined score. With context evidence
// the actual neighboring cells are compared against the stored context;
// otherwise content similarity stands alone.
func (loc *Locator) scoreGroup(doc *Document, leaves []*TextLeaf, target, contextBefore, contextAfter string) LeafGroup {
	parts := make([]string, 0, len(leaves))
	for _, l := range leaves {
		parts = append(parts, l.Text())
	}
	groupText := joinWords(parts)
	baseSim := TextSimilarity(groupText, target)

	contextScore := 0.0
	if contextBefore != "" || contextAfter != "" {
		actualBefore, actualAfter := actualGroupContext(leaves)

		beforeScore := 0.0
		if contextBefore != "" && actualBefore != "" {
			beforeScore = TextSimilarity(actualBefore, contextBefore)
		}
		afterScore := 0.0
		if contextAfter != "" && actualAfter != "" {
			afterScore = TextSimilarity(actualAfter, contextAfter)
		}

		// Equal weight over whichever sides produced evidence.
		sum, n := 0.0, 0
		if beforeScore > 0 {
			sum += beforeScore
			n++
		}
		if afterScore > 0 {
			sum += afterScore
			n++
		}
		if n > 0 {
			contextScore = sum / float64(n)
		}
	}

	finalScore := baseSim
	if contextScore > 0 {
		finalScore = baseSim*groupBaseWeight + contextScore*groupContextWeight
	}

	return LeafGroup{
		Leaves:         leaves,
		Text:           groupText,
		BaseSimilarity: baseSim,
		ContextScore:   contextScore,
		FinalScore:     finalScore,
	}
}

// actualGroupContext extracts the real neighboring context of a group
// from the tree: the text of the cell immediately before the first
// member's cell and immediately after the last member's cell within
// their shared row. Either side is empty at the row boundary.
func actualGroupContext(leaves []*TextLeaf) (before, after string) {
	if len(leaves) == 0 {
		return "", ""
	}

	first := leaves[0]
	last := leaves[len(leaves)-1]
	row := first.RowContainer()
	if row == nil {
		return "", ""
	}

	cells := rowCells(row)
	firstIdx := cellIndex(cells, first.Container())
	lastIdx := cellIndex(cells, last.Container())
	if firstIdx == -1 || lastIdx == -1 {
		return "", ""
	}

	if firstIdx > 0 {
		before = nodeText(cells[firstIdx-1])
	}
	if lastIdx < len(cells)-1 {
		after = nodeText(cells[lastIdx+1])
	}
	return before, after
}
