// Package fuzzy ranks close matches for mistyped animal keys.
package fuzzy

import (
	"sort"

	"github.com/agext/levenshtein"
)

// MaxDistance is the exclusive edit-distance cutoff for a suggestion.
// Candidates at distance 3 or more are noise for keys this short.
const MaxDistance = 3

// Suggestion is a candidate key with its edit distance from the input.
type Suggestion struct {
	Key      string
	Distance int
}

// Suggest returns up to limit candidates within MaxDistance of input,
// ordered by ascending distance. Ties keep candidate order, so callers
// passing registry declaration order get deterministic ranking.
func Suggest(input string, candidates []string, limit int) []Suggestion {
	var matches []Suggestion
	for _, c := range candidates {
		d := levenshtein.Distance(input, c, nil)
		if d < MaxDistance {
			matches = append(matches, Suggestion{Key: c, Distance: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	if limit >= 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
