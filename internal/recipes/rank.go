package recipes

import (
	"slices"

	"github.com/samber/lo"

	"mealplanner/internal/mealdb"
)

// rankCandidates counts, per meal id, how many of the per-ingredient lists
// contain it and returns at most n ids ordered by that count. Ties keep the
// order in which ids were first seen across the lists.
func rankCandidates(lists [][]mealdb.MealSummary, n int) ([]string, map[string]int) {
	hits := make(map[string]int)
	var order []string
	for _, meals := range lists {
		ids := lo.Uniq(lo.Map(meals, func(m mealdb.MealSummary, _ int) string { return m.ID }))
		for _, id := range ids {
			if id == "" {
				continue
			}
			if _, seen := hits[id]; !seen {
				order = append(order, id)
			}
			hits[id]++
		}
	}

	slices.SortStableFunc(order, func(a, b string) int {
		return hits[b] - hits[a]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order, hits
}
