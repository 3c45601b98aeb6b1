package main

import "strings"

// NormalizeText canonicalizes text for comparison: non-breaking spaces
// become ordinary spaces, any run of whitespace collapses to a single
// space, and leading/trailing whitespace is trimmed. Idempotent.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}

// splitWords splits normalized text into its word sequence.
func splitWords(s string) []string {
	return strings.Fields(NormalizeText(s))
}

// joinWords joins a word slice with single spaces, the same separator
// NormalizeText uses, so joined slices line up with normalized text.
func joinWords(words []string) string {
	return strings.Join(words, " ")
}
