package recipes

import (
	"context"
	"sync"

	"mealplanner/internal/mealdb"
)

type fakeGateway struct {
	byIngredient map[string][]mealdb.MealSummary
	details      map[string]*mealdb.MealDetail

	mu      sync.Mutex
	queries []string
	lookups []string
}

func (f *fakeGateway) ListByIngredient(_ context.Context, ingredient string) []mealdb.MealSummary {
	f.mu.Lock()
	f.queries = append(f.queries, ingredient)
	f.mu.Unlock()
	return f.byIngredient[ingredient]
}

func (f *fakeGateway) LookupByID(_ context.Context, id string) *mealdb.MealDetail {
	f.mu.Lock()
	f.lookups = append(f.lookups, id)
	f.mu.Unlock()
	return f.details[id]
}

func summaries(ids ...string) []mealdb.MealSummary {
	out := make([]mealdb.MealSummary, 0, len(ids))
	for _, id := range ids {
		out = append(out, mealdb.MealSummary{ID: id, Name: "meal " + id})
	}
	return out
}

// detail builds a meal whose slots hold the given ingredient names with a
// "1 unit" measure.
func detail(id string, ingredients ...string) *mealdb.MealDetail {
	d := &mealdb.MealDetail{ID: id, Name: "meal " + id, Category: "Chicken", Tags: "Dinner,Quick"}
	for i, name := range ingredients {
		d.Slots[i] = mealdb.Slot{Ingredient: name, Measure: "1 unit"}
	}
	return d
}
