package main

import "fmt"

// Comparator runs the full pipeline: word-level diff over the two
// documents' visible text, then in-place annotation of both trees.
type Comparator struct {
	locator *Locator
	logger  *Logger
}

// NewComparator creates a comparator with the default acceptance
// threshold.
func NewComparator(logger *Logger) *Comparator {
	return NewComparatorWithThreshold(absoluteThreshold, logger)
}

// NewComparatorWithThreshold creates a comparator with a custom
// acceptance threshold, applied uniformly at every scoring site.
func NewComparatorWithThreshold(threshold float64, logger *Logger) *Comparator {
	return &Comparator{
		locator: NewLocator(threshold, logger),
		logger:  logger,
	}
}

// Comparison holds the outcome of one run: the ordered hunks plus both
// annotated trees. Trees are owned by the run and mutated in place.
type Comparison struct {
	Hunks     []Hunk
	BeforeDoc *Document
	AfterDoc  *Document
}

// Compare parses both documents, diffs their visible text and annotates
// both trees. Parse failures are fatal for the run; locate failures are
// not, they leave individual hunks unhighlighted.
func (c *Comparator) Compare(beforeHTML, afterHTML string) (*Comparison, error) {
	beforeDoc, err := ParseDocument(beforeHTML)
	if err != nil {
		return nil, fmt.Errorf("parse before document: %w", err)
	}
	afterDoc, err := ParseDocument(afterHTML)
	if err != nil {
		return nil, fmt.Errorf("parse after document: %w", err)
	}

	hunks := c.Analyze(beforeDoc.VisibleText(), afterDoc.VisibleText())
	c.logger.Info("analysis complete", map[string]any{
		"hunks": len(hunks),
	})

	c.Annotate(beforeDoc, afterDoc, hunks)

	return &Comparison{Hunks: hunks, BeforeDoc: beforeDoc, AfterDoc: afterDoc}, nil
}

// Analyze computes the ordered word-level hunks between the two texts.
// Equal runs are excluded.
func (c *Comparator) Analyze(beforeText, afterText string) []Hunk {
	return AnalyzeChanges(beforeText, afterText)
}

// Annotate locates every hunk in the relevant tree and marks the match
// in place. Hunks are processed strictly in diff order: each applied
// highlight mutates the tree later searches re-index, so hunk k commits
// before hunk k+1 runs. The before and after passes are independent of
// each other.
func (c *Comparator) Annotate(beforeDoc, afterDoc *Document, hunks []Hunk) {
	for i := range hunks {
		hunks[i].Highlight = c.annotateHunk(beforeDoc, afterDoc, &hunks[i], i)
	}
}

func (c *Comparator) annotateHunk(beforeDoc, afterDoc *Document, hunk *Hunk, index int) *HighlightResult {
	beforeText := hunk.BeforeText()
	afterText := hunk.AfterText()
	contextBefore, contextAfter := hunkContext(hunk)

	result := &HighlightResult{}

	switch hunk.Status {
	case StatusDelete:
		if beforeText != "" {
			tooltip := fmt.Sprintf("change %d: removed: %s", index+1, beforeText)
			result.Before = c.locateAndMark(beforeDoc, beforeText, contextBefore, contextAfter, ClassRemoved, tooltip, &result.BeforeExcerpt)
			result.BeforeMatched = result.Before.Matched
		}

	case StatusInsert:
		if afterText != "" {
			tooltip := fmt.Sprintf("change %d: added: %s", index+1, afterText)
			result.After = c.locateAndMark(afterDoc, afterText, contextBefore, contextAfter, ClassAdded, tooltip, &result.AfterExcerpt)
			result.AfterMatched = result.After.Matched
		}

	case StatusReplace:
		if beforeText != "" && afterText != "" {
			tooltip := fmt.Sprintf("change %d: modified: %s -> %s", index+1, beforeText, afterText)
			result.Before = c.locateAndMark(beforeDoc, beforeText, contextBefore, contextAfter, ClassModified, tooltip, &result.BeforeExcerpt)
			result.BeforeMatched = result.Before.Matched
			result.After = c.locateAndMark(afterDoc, afterText, contextBefore, contextAfter, ClassModified, tooltip, &result.AfterExcerpt)
			result.AfterMatched = result.After.Matched
		}
	}

	if !result.BeforeMatched && !result.AfterMatched {
		c.logger.Warn("hunk not located", map[string]any{
			"hunk":   index + 1,
			"status": hunk.Status.String(),
			"before": truncate(beforeText, 50),
			"after":  truncate(afterText, 50),
		})
	}

	return result
}

func (c *Comparator) locateAndMark(doc *Document, target, contextBefore, contextAfter string, class Classification, tooltip string, excerpt *string) MatchResult {
	result := c.locator.Locate(doc, target, contextBefore, contextAfter)
	if !result.Matched {
		return result
	}
	if result.Candidate != nil {
		*excerpt = applyLeafHighlight(result.Candidate.Leaf, class, tooltip)
	} else if result.Group != nil {
		*excerpt = applyGroupHighlight(result.Group, class, tooltip)
	}
	return result
}

// hunkContext picks the stored context pair used for locating: the
// before-side contexts when both are present, else the after-side pair,
// else none. A hunk spanning a whole document has no usable context.
func hunkContext(hunk *Hunk) (contextBefore, contextAfter string) {
	if len(hunk.BeforeContextBefore) > 0 && len(hunk.BeforeContextAfter) > 0 {
		return joinWords(hunk.BeforeContextBefore), joinWords(hunk.BeforeContextAfter)
	}
	if len(hunk.AfterContextBefore) > 0 && len(hunk.AfterContextAfter) > 0 {
		return joinWords(hunk.AfterContextBefore), joinWords(hunk.AfterContextAfter)
	}
	return "", ""
}
