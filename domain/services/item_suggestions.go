package services

import (
	"sort"

	"megabot/domain/entities"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MaxAutocompleteChoices is the number of choices Discord accepts in one autocomplete response
const MaxAutocompleteChoices = 25

// maxSuggestions is the number of "did you mean" names attached to a failed removal
const maxSuggestions = 3

type rankedName struct {
	name     string
	distance int
}

// RankItemNames returns names matching the typed prefix of an item, best match first.
// An empty query returns the first limit names in their given order.
func RankItemNames(query string, names []string, limit int) []string {
	query = entities.NormalizeItemName(query)
	if query == "" {
		if len(names) > limit {
			return names[:limit]
		}
		return names
	}

	ranked := make([]rankedName, 0, len(names))
	for _, name := range names {
		if distance := fuzzy.RankMatchNormalizedFold(query, name); distance >= 0 {
			ranked = append(ranked, rankedName{name: name, distance: distance})
		}
	}
	sortRanked(ranked)

	result := make([]string, 0, min(limit, len(ranked)))
	for _, r := range ranked {
		if len(result) == limit {
			break
		}
		result = append(result, r.name)
	}
	return result
}

// SuggestItemNames returns held item names that look like a mistyped itemName.
// A name qualifies when itemName is a fuzzy subsequence of it or it is within a
// small edit distance.
func SuggestItemNames(itemName string, held []string) []string {
	itemName = entities.NormalizeItemName(itemName)
	maxEdits := max(2, len(itemName)/3)

	ranked := make([]rankedName, 0, len(held))
	for _, name := range held {
		if name == itemName {
			continue
		}
		distance := fuzzy.LevenshteinDistance(itemName, name)
		if distance <= maxEdits || fuzzy.MatchNormalizedFold(itemName, name) {
			ranked = append(ranked, rankedName{name: name, distance: distance})
		}
	}
	sortRanked(ranked)

	suggestions := make([]string, 0, maxSuggestions)
	for _, r := range ranked {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, r.name)
	}
	return suggestions
}

func sortRanked(ranked []rankedName) {
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].distance != ranked[j].distance {
			return ranked[i].distance < ranked[j].distance
		}
		return ranked[i].name < ranked[j].name
	})
}
