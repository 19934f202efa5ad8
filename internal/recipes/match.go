package recipes

import (
	"strings"

	"github.com/samber/lo"

	"mealplanner/internal/recipes/types"
)

// CalculateMatch scores a recipe's ingredients against normalized user
// ingredient names. An ingredient matches when its name contains, or is
// contained in, any user name, so "chicken breast" matches "chicken". This is
// loose on purpose and will also pair "pea" with "peach".
func CalculateMatch(ingredients []types.Ingredient, userIngredients []string) (int, []string) {
	matched := 0
	missing := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		found := lo.ContainsBy(userIngredients, func(u string) bool {
			return strings.Contains(ing.Name, u) || strings.Contains(u, ing.Name)
		})
		if found {
			matched++
			continue
		}
		missing = append(missing, ing.Name)
	}
	return percentage(matched, len(ingredients)), lo.Uniq(missing)
}

// percentage rounds half up, in integers.
func percentage(matched, total int) int {
	if total == 0 {
		return 0
	}
	return (200*matched + total) / (2 * total)
}

// normalizeQuery normalizes names and drops blanks and duplicates.
func normalizeQuery(names []string) []string {
	return lo.Uniq(lo.Compact(lo.Map(names, func(n string, _ int) string {
		return types.Normalize(n)
	})))
}
