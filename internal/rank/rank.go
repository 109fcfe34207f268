// Package rank orders candidate items by how well they approximately match a query.
//
// Costs are floats where lower is better: 0 means the query equals a field after
// normalization, and anything above Threshold is dropped from results.
package rank

import (
	"cmp"
	"slices"

	"typeahead/internal/domain"
)

// Threshold is the worst aggregate cost a candidate may have and still be returned.
const Threshold = 0.6

// Func ranks candidates for a query and caps the result at limit.
type Func func(query string, candidates []domain.Item, limit int) []domain.Item

// Match pairs a ranked item with its aggregate cost.
type Match struct {
	Item domain.Item
	Cost float64
}

// Rank returns the candidates matching query, best first, at most limit of them.
// Equal costs keep their pool order. An empty query, an empty pool or a limit below
// one yields no results.
func Rank(query string, candidates []domain.Item, limit int) []domain.Item {
	matches := Scored(query, candidates, limit)
	if len(matches) == 0 {
		return nil
	}
	out := make([]domain.Item, len(matches))
	for i, m := range matches {
		out[i] = m.Item
	}
	return out
}

// Scored is Rank with the aggregate cost of every returned item.
func Scored(query string, candidates []domain.Item, limit int) []Match {
	q := normalize(query)
	if q == "" || len(candidates) == 0 || limit < 1 {
		return nil
	}
	matches := make([]Match, 0, len(candidates))
	for _, it := range candidates {
		cost := itemCost(q, it)
		if cost > Threshold {
			continue
		}
		matches = append(matches, Match{Item: it, Cost: cost})
	}
	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Compare(a.Cost, b.Cost)
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// itemCost is the best cost over the id, the primary text, the secondary text and
// every search token. q must already be normalized.
func itemCost(q string, it domain.Item) float64 {
	best := fieldCost(q, normalize(it.ID()), false)
	if best == 0 {
		return 0
	}
	fields := make([]string, 0, 2+len(it.SearchTokens()))
	fields = append(fields, it.PrimaryText())
	if it.SecondaryText() != "" {
		fields = append(fields, it.SecondaryText())
	}
	fields = append(fields, it.SearchTokens()...)
	for _, f := range fields {
		if c := fieldCost(q, normalize(f), true); c < best {
			best = c
			if best == 0 {
				break
			}
		}
	}
	return best
}
