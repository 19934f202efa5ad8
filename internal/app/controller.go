// Package app owns the application state the front end renders.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mealplanner/internal/favorites"
	"mealplanner/internal/kv"
	"mealplanner/internal/pantry"
	"mealplanner/internal/recipes/types"
	"mealplanner/internal/shopping"
)

const lastResultsKey = "search/last"

// Searcher ranks recipes for a set of ingredient names.
type Searcher interface {
	Search(ctx context.Context, ingredients []string) []types.Recipe
}

// State is everything a view needs. Views read it; only the Controller
// mutates it.
type State struct {
	Pantry    *pantry.Pantry
	Favorites *favorites.Favorites
	Results   []types.Recipe

	ShowFavorites    bool
	ShowShoppingList bool
	Selected         *types.Recipe
	Checklist        *shopping.Checklist
}

type Controller struct {
	store    kv.Store
	searcher Searcher
	state    *State
}

func NewController(store kv.Store, searcher Searcher) *Controller {
	return &Controller{
		store:    store,
		searcher: searcher,
		state: &State{
			Pantry:    pantry.New(store),
			Favorites: favorites.New(store),
			Results:   []types.Recipe{},
		},
	}
}

// Load reads the pantry and favorites from the store.
func (c *Controller) Load(ctx context.Context) {
	c.state.Pantry.Load(ctx)
	c.state.Favorites.Load(ctx)

	var results []types.Recipe
	if err := kv.GetJSON(ctx, c.store, lastResultsKey, &results); err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			slog.WarnContext(ctx, "discarding unreadable search results", "error", err)
		}
		results = nil
	}
	if results != nil {
		c.state.Results = results
	}
	slog.DebugContext(ctx, "loaded state", "pantry", c.state.Pantry.Len(), "favorites", c.state.Favorites.Len())
}

func (c *Controller) State() *State {
	return c.state
}

func (c *Controller) AddIngredient(ctx context.Context, name string) (types.UserIngredient, error) {
	item, err := c.state.Pantry.Add(ctx, name)
	switch {
	case errors.Is(err, pantry.ErrDuplicate):
		return item, &Advisory{Title: "Already added", Message: fmt.Sprintf("%q is already in your list.", name), Err: err}
	case errors.Is(err, pantry.ErrEmptyName):
		return item, &Advisory{Title: "Empty ingredient", Message: "Type an ingredient name first.", Err: err}
	}
	return item, err
}

func (c *Controller) RemoveIngredient(ctx context.Context, id string) {
	c.state.Pantry.Remove(ctx, id)
}

// Search ranks recipes for the pantry and switches back to the results
// view. An empty pantry is refused; no matches still replaces the previous
// results but comes back with an advisory.
func (c *Controller) Search(ctx context.Context) ([]types.Recipe, error) {
	if c.state.Pantry.Len() == 0 {
		return nil, &Advisory{
			Title:   "No Ingredients",
			Message: "Please add ingredients from your fridge first to search for recipes.",
		}
	}

	c.state.ShowFavorites = false
	c.CloseShoppingList()

	results := c.searcher.Search(ctx, c.state.Pantry.Names())
	c.state.Results = results
	if err := kv.SetJSON(ctx, c.store, lastResultsKey, results); err != nil {
		slog.ErrorContext(ctx, "failed to save search results", "error", err)
	}
	if len(results) == 0 {
		return results, &Advisory{
			Title:   "No Results",
			Message: "Unfortunately we could not find recipes with these ingredients. Try adding more ingredients!",
		}
	}
	return results, nil
}

func (c *Controller) ToggleFavoritesView() {
	c.state.ShowFavorites = !c.state.ShowFavorites
	c.CloseShoppingList()
}

// Displayed is the list the current view shows.
func (c *Controller) Displayed() []types.Recipe {
	if c.state.ShowFavorites {
		return c.state.Favorites.List()
	}
	return c.state.Results
}

func (c *Controller) ToggleFavorite(ctx context.Context, r types.Recipe) bool {
	return c.state.Favorites.Toggle(ctx, r)
}

// RequestFavoriteRemoval starts the confirm-then-remove flow for a favorite.
func (c *Controller) RequestFavoriteRemoval(id string) (*favorites.PendingRemoval, error) {
	pending, ok := c.state.Favorites.RequestRemoval(id)
	if !ok {
		return nil, &Advisory{Title: "Remove Favorite", Message: fmt.Sprintf("recipe %s is not a favorite", id)}
	}
	return pending, nil
}

// OpenShoppingList selects r and loads its checklist.
func (c *Controller) OpenShoppingList(ctx context.Context, r types.Recipe) *shopping.Checklist {
	c.state.Selected = &r
	c.state.Checklist = shopping.Open(ctx, c.store, r)
	c.state.ShowShoppingList = true
	return c.state.Checklist
}

func (c *Controller) CloseShoppingList() {
	c.state.ShowShoppingList = false
	c.state.Selected = nil
	c.state.Checklist = nil
}

// FindRecipe looks id up in the current results, then in favorites.
func (c *Controller) FindRecipe(id string) (types.Recipe, bool) {
	for _, r := range c.state.Results {
		if r.ID == id {
			return r, true
		}
	}
	for _, r := range c.state.Favorites.List() {
		if r.ID == id {
			return r, true
		}
	}
	return types.Recipe{}, false
}
