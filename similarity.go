package main

import (
	"github.com/pmezard/go-difflib/difflib"
)

// TextSimilarity returns a similarity ratio between two texts in [0, 1].
// Both texts are normalized first, then compared character by character
// with difflib's sequence matcher (Ratcliff/Obershelp): the ratio is
// 2*M/T where M is the total length of matched blocks and T the combined
// length. Empty input on either side scores 0.
func TextSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0.0
	}

	aNorm := NormalizeText(a)
	bNorm := NormalizeText(b)
	if aNorm == "" || bNorm == "" {
		return 0.0
	}
	if aNorm == bNorm {
		return 1.0
	}

	matcher := difflib.NewMatcher(splitChars(aNorm), splitChars(bNorm))
	return matcher.Ratio()
}

// splitChars breaks a string into single-rune elements for the
// character-level matcher.
func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}
