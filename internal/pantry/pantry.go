// Package pantry keeps the user's list of on-hand ingredients.
package pantry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"mealplanner/internal/kv"
	"mealplanner/internal/recipes/types"
)

const storageKey = "pantry/ingredients"

var (
	ErrEmptyName = errors.New("ingredient name is empty")
	ErrDuplicate = errors.New("ingredient already added")
)

// Pantry is the in-memory pantry list, written back to the store in full
// after every change. It has a single owner and is not safe for concurrent
// use.
type Pantry struct {
	store kv.Store
	items []types.UserIngredient
}

func New(store kv.Store) *Pantry {
	return &Pantry{store: store, items: []types.UserIngredient{}}
}

// Load replaces the in-memory list with the stored one. Missing or corrupt
// data leaves an empty pantry. Stored names are normalized and the first
// entry wins when two normalize to the same name.
func (p *Pantry) Load(ctx context.Context) {
	var items []types.UserIngredient
	if err := kv.GetJSON(ctx, p.store, storageKey, &items); err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			slog.WarnContext(ctx, "discarding unreadable pantry", "error", err)
		}
		items = nil
	}
	items = lo.FilterMap(items, func(i types.UserIngredient, _ int) (types.UserIngredient, bool) {
		i.Name = types.Normalize(i.Name)
		return i, i.Name != ""
	})
	p.items = lo.UniqBy(items, func(i types.UserIngredient) string { return i.Name })
}

// Add appends name to the pantry. A blank name or one that matches an
// existing entry after normalizing is rejected and nothing changes.
func (p *Pantry) Add(ctx context.Context, name string) (types.UserIngredient, error) {
	normalized := types.Normalize(name)
	if normalized == "" {
		return types.UserIngredient{}, ErrEmptyName
	}
	if p.Contains(normalized) {
		return types.UserIngredient{}, fmt.Errorf("%w: %q is already in your list", ErrDuplicate, name)
	}

	item := types.UserIngredient{ID: uuid.NewString(), Name: normalized}
	p.items = append(p.items, item)
	p.save(ctx)
	return item, nil
}

// Remove drops the entry with the given id, if any.
func (p *Pantry) Remove(ctx context.Context, id string) {
	before := len(p.items)
	p.items = slices.DeleteFunc(p.items, func(i types.UserIngredient) bool {
		return i.ID == id
	})
	if len(p.items) == before {
		return
	}
	p.save(ctx)
}

func (p *Pantry) Contains(name string) bool {
	name = types.Normalize(name)
	return lo.ContainsBy(p.items, func(i types.UserIngredient) bool {
		return types.Normalize(i.Name) == name
	})
}

func (p *Pantry) List() []types.UserIngredient {
	return slices.Clone(p.items)
}

func (p *Pantry) Names() []string {
	return lo.Map(p.items, func(i types.UserIngredient, _ int) string { return i.Name })
}

func (p *Pantry) Len() int {
	return len(p.items)
}

// save persists the list. A failed write is logged; the in-memory list stays
// authoritative for this session.
func (p *Pantry) save(ctx context.Context) {
	if err := kv.SetJSON(ctx, p.store, storageKey, p.items); err != nil {
		slog.ErrorContext(ctx, "failed to save pantry", "error", err)
	}
}
