package recipes

import (
	"strings"

	"github.com/samber/lo"

	"mealplanner/internal/recipes/types"
)

// FilterByCategory keeps recipes whose category equals category, ignoring
// case. An empty category or "all" keeps everything.
func FilterByCategory(recipes []types.Recipe, category string) []types.Recipe {
	if category == "" || strings.EqualFold(category, "all") {
		return recipes
	}
	return lo.Filter(recipes, func(r types.Recipe, _ int) bool {
		return strings.EqualFold(r.Category, category)
	})
}

// FilterByTag keeps recipes with at least one tag containing tag, ignoring
// case. An empty tag or "all" keeps everything.
func FilterByTag(recipes []types.Recipe, tag string) []types.Recipe {
	if tag == "" || strings.EqualFold(tag, "all") {
		return recipes
	}
	tag = strings.ToLower(tag)
	return lo.Filter(recipes, func(r types.Recipe, _ int) bool {
		return lo.ContainsBy(r.Tags, func(t string) bool {
			return strings.Contains(strings.ToLower(t), tag)
		})
	})
}
