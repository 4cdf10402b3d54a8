package menu

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Match returns the index of the item whose label best matches query, or -1.
// Ties keep the original ordering.
func Match(items []Item, query string) int {
	if query == "" || len(items) == 0 {
		return -1
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	if len(ranks) == 0 {
		return -1
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	return ranks[0].OriginalIndex
}
