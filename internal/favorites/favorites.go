// Package favorites keeps the recipes a user has starred.
package favorites

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/samber/lo"

	"mealplanner/internal/kv"
	"mealplanner/internal/recipes/types"
)

const storageKey = "favorites"

// Favorites is an ordered set of recipes keyed by id. It has a single owner
// and is not safe for concurrent use.
type Favorites struct {
	store   kv.Store
	recipes []types.Recipe
}

func New(store kv.Store) *Favorites {
	return &Favorites{store: store, recipes: []types.Recipe{}}
}

// Load replaces the in-memory set with the stored one. Missing or corrupt
// data leaves no favorites.
func (f *Favorites) Load(ctx context.Context) {
	var recipes []types.Recipe
	if err := kv.GetJSON(ctx, f.store, storageKey, &recipes); err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			slog.WarnContext(ctx, "discarding unreadable favorites", "error", err)
		}
		recipes = []types.Recipe{}
	}
	f.recipes = lo.UniqBy(recipes, func(r types.Recipe) string { return r.ID })
}

// Toggle adds r when no favorite has its id and removes it otherwise. It
// reports whether r is a favorite afterwards.
func (f *Favorites) Toggle(ctx context.Context, r types.Recipe) bool {
	added := !f.Contains(r.ID)
	if added {
		f.recipes = append(f.recipes, r)
	} else {
		f.remove(r.ID)
	}
	f.save(ctx)
	return added
}

func (f *Favorites) Contains(id string) bool {
	return lo.ContainsBy(f.recipes, func(r types.Recipe) bool { return r.ID == id })
}

func (f *Favorites) List() []types.Recipe {
	return slices.Clone(f.recipes)
}

func (f *Favorites) Len() int {
	return len(f.recipes)
}

// PendingRemoval is the first half of removing a favorite. Nothing changes
// until Confirm.
type PendingRemoval struct {
	favorites *Favorites
	id        string
	done      bool
}

// RequestRemoval starts removing the favorite with id. It returns false when
// there is no such favorite.
func (f *Favorites) RequestRemoval(id string) (*PendingRemoval, bool) {
	if !f.Contains(id) {
		return nil, false
	}
	return &PendingRemoval{favorites: f, id: id}, true
}

func (p *PendingRemoval) ID() string {
	return p.id
}

// Confirm removes the favorite and persists the set. It reports whether
// anything was removed; a second Confirm or a Confirm after Cancel is a no-op.
func (p *PendingRemoval) Confirm(ctx context.Context) bool {
	if p.done {
		return false
	}
	p.done = true
	if !p.favorites.remove(p.id) {
		return false
	}
	p.favorites.save(ctx)
	return true
}

func (p *PendingRemoval) Cancel() {
	p.done = true
}

func (f *Favorites) remove(id string) bool {
	before := len(f.recipes)
	f.recipes = slices.DeleteFunc(f.recipes, func(r types.Recipe) bool { return r.ID == id })
	return len(f.recipes) != before
}

func (f *Favorites) save(ctx context.Context) {
	if err := kv.SetJSON(ctx, f.store, storageKey, f.recipes); err != nil {
		slog.ErrorContext(ctx, "failed to save favorites", "error", err)
	}
}
