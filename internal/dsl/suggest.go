package dsl

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// closestName returns the candidate nearest to name, or "" when nothing is
// close enough to be a plausible typo.
func closestName(name string, candidates []string) string {
	candidates = append([]string(nil), candidates...)
	sort.Strings(candidates)
	best := ""
	bestDist := -1
	for _, cand := range candidates {
		if cand == name {
			continue
		}
		dist := levenshtein.ComputeDistance(name, cand)
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			best = cand
			bestDist = dist
		}
	}
	return best
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
