package recipes

import (
	"context"
	"log/slog"
	"slices"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"mealplanner/internal/mealdb"
	"mealplanner/internal/recipes/types"
)

// DefaultTopN is how many candidates get a detail lookup per search.
const DefaultTopN = 20

// Gateway is the remote recipe source. Implementations swallow their own
// failures and report them as empty or nil results.
type Gateway interface {
	ListByIngredient(ctx context.Context, ingredient string) []mealdb.MealSummary
	LookupByID(ctx context.Context, id string) *mealdb.MealDetail
}

var _ Gateway = (*mealdb.Client)(nil)

// Engine turns pantry ingredient names into recipes ranked by coverage.
type Engine struct {
	gateway Gateway
	topN    int
}

type Option func(*Engine)

// WithTopN caps how many candidates are looked up in detail.
func WithTopN(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.topN = n
		}
	}
}

func NewEngine(gateway Gateway, opts ...Option) *Engine {
	e := &Engine{gateway: gateway, topN: DefaultTopN}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Search queries the gateway once per ingredient, looks up the best
// candidates and returns them sorted by match percentage, highest first. It
// never fails; a gateway that returns nothing yields no recipes.
func (e *Engine) Search(ctx context.Context, userIngredients []string) []types.Recipe {
	names := normalizeQuery(userIngredients)
	if len(names) == 0 {
		return []types.Recipe{}
	}

	lists := make([][]mealdb.MealSummary, len(names))
	var queries errgroup.Group
	for i, name := range names {
		queries.Go(func() error {
			lists[i] = e.gateway.ListByIngredient(ctx, name)
			return nil
		})
	}
	_ = queries.Wait()

	topIDs, hits := rankCandidates(lists, e.topN)
	if len(topIDs) == 0 {
		slog.InfoContext(ctx, "no candidate recipes", "ingredients", names)
		return []types.Recipe{}
	}

	details := make([]*mealdb.MealDetail, len(topIDs))
	var lookups errgroup.Group
	for i, id := range topIDs {
		lookups.Go(func() error {
			details[i] = e.gateway.LookupByID(ctx, id)
			return nil
		})
	}
	_ = lookups.Wait()

	results := lo.FilterMap(details, func(d *mealdb.MealDetail, _ int) (types.Recipe, bool) {
		if d == nil {
			return types.Recipe{}, false
		}
		return buildRecipe(d, names), true
	})
	slices.SortStableFunc(results, func(a, b types.Recipe) int {
		return b.MatchPercentage - a.MatchPercentage
	})

	slog.InfoContext(ctx, "recipe search complete",
		"ingredients", len(names),
		"candidates", len(hits),
		"looked_up", len(topIDs),
		"recipes", len(results))
	return results
}

func buildRecipe(d *mealdb.MealDetail, userIngredients []string) types.Recipe {
	ingredients := mealdb.ParseIngredients(d)
	pct, missing := CalculateMatch(ingredients, userIngredients)
	return types.Recipe{
		ID:                 d.ID,
		Name:               d.Name,
		Category:           d.Category,
		Area:               d.Area,
		Instructions:       d.Instructions,
		Thumbnail:          d.Thumbnail,
		YouTube:            d.YouTube,
		Ingredients:        ingredients,
		MatchPercentage:    pct,
		MissingIngredients: missing,
		Tags:               mealdb.SplitTags(d.Tags),
	}
}
