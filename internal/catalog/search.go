package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// rankedName pairs a catalog name with its edit distance from the query
type rankedName struct {
	name     string
	distance int
}

// suggestNames ranks catalog names by edit distance from the query and
// returns the closest matches within MaxSuggestionDistance. Matching is
// case-insensitive; ties break alphabetically so suggestions are stable.
func suggestNames(names []string, query string, limit int) []string {
	if limit <= 0 {
		limit = DefaultSuggestions
	}
	lowered := strings.ToLower(query)

	var ranked []rankedName
	for _, name := range names {
		d := levenshtein.ComputeDistance(lowered, strings.ToLower(name))
		if d <= MaxSuggestionDistance {
			ranked = append(ranked, rankedName{name: name, distance: d})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].distance != ranked[j].distance {
			return ranked[i].distance < ranked[j].distance
		}
		return ranked[i].name < ranked[j].name
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	suggestions := make([]string, len(ranked))
	for i, r := range ranked {
		suggestions[i] = r.name
	}
	return suggestions
}
