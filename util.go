package main

import (
	"sort"
)

func clamp(value, lower, upper int) int {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}

func panelContentHeight(height int) int {
	return max(0, height-2)
}

func visibleRange(start, window, length int) (int, int) {
	start = clamp(start, 0, length)
	end := min(start+window, length)
	return start, end
}

func copyMap(m map[string]int) map[string]int {
	result := make(map[string]int, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

func sortedFieldKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
