// Package suggest finds likely intended names for a mistyped one.
package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// threshold is the minimum similarity score for a candidate to be suggested.
const threshold = 0.5

type scored struct {
	name  string
	score float64
}

// FindSimilar returns up to maxResults candidates similar to target, most similar first. Ties are
// broken alphabetically and duplicate candidates are reported once. It returns an empty, non-nil
// slice when nothing qualifies.
func FindSimilar(target string, candidates []string, maxResults int) []string {
	if target == "" || maxResults <= 0 {
		return []string{}
	}

	seen := make(map[string]bool, len(candidates))
	matches := make([]scored, 0, len(candidates))
	for _, name := range candidates {
		if seen[name] {
			continue
		}
		seen[name] = true
		if s := similarity(target, name); s > threshold {
			matches = append(matches, scored{name: name, score: s})
		}
	}

	slices.SortFunc(matches, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	result := make([]string, 0, min(maxResults, len(matches)))
	for _, m := range matches[:min(maxResults, len(matches))] {
		result = append(result, m.name)
	}
	return result
}

// similarity scores two strings between 0 and 1, case-insensitively. A candidate that starts with
// the target scores 0.9.
func similarity(target, candidate string) float64 {
	target = strings.ToLower(target)
	candidate = strings.ToLower(candidate)

	switch {
	case target == candidate:
		return 1.0
	case strings.HasPrefix(candidate, target):
		return 0.9
	}
	longest := max(len(target), len(candidate))
	return 1.0 - float64(distance(target, candidate))/float64(longest)
}

// distance is the Levenshtein edit distance, computed with two rows.
func distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
