package reconcile

import (
	"sort"

	"item-matcher/core/catalog"
)

// DefaultSuggestLimit is the shortlist length used when no limit is given.
const DefaultSuggestLimit = 5

// Suggest ranks candidates for a source item. It scores every candidate, drops zero scores,
// stable-sorts by descending score and truncates to limit (DefaultSuggestLimit when limit <= 0).
// An empty result means only an explicit no-match can be offered.
func Suggest(scorer Scorer, item catalog.Item, candidates *catalog.Catalog, limit int) []Suggestion {
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}

	suggestions := make([]Suggestion, 0)
	for i := 0; i < candidates.Len(); i++ {
		candidate := candidates.At(i)
		if score := scorer.Score(item.Description, candidate.Description); score > 0 {
			suggestions = append(suggestions, Suggestion{Item: candidate, Score: score})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
