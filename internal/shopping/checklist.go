// Package shopping derives a per-recipe checklist of missing ingredients.
package shopping

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"

	"mealplanner/internal/kv"
	"mealplanner/internal/recipes/types"
)

const keyPrefix = "shoppinglist/"

func storageKey(recipeID string) string {
	return keyPrefix + recipeID
}

// Item is one line of the checklist.
type Item struct {
	Name    string
	Measure string
	Checked bool
}

// Label renders the item as "<measure> - <Name>", or just "<Name>" without a
// measure.
func (i Item) Label() string {
	name := capitalize(i.Name)
	if strings.TrimSpace(i.Measure) == "" {
		return name
	}
	return i.Measure + " - " + name
}

// Checklist tracks which of a recipe's missing ingredients have been bought.
// It has a single owner and is not safe for concurrent use.
type Checklist struct {
	store   kv.Store
	recipe  types.Recipe
	missing []string
	checked []string
}

// Open loads the checklist for recipe. Missing or corrupt stored state
// starts an empty checklist.
func Open(ctx context.Context, store kv.Store, recipe types.Recipe) *Checklist {
	c := &Checklist{
		store:  store,
		recipe: recipe,
		missing: lo.Uniq(lo.Compact(lo.Map(recipe.MissingIngredients, func(m string, _ int) string {
			return types.Normalize(m)
		}))),
		checked: []string{},
	}

	var checked []string
	if err := kv.GetJSON(ctx, store, storageKey(recipe.ID), &checked); err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			slog.WarnContext(ctx, "discarding unreadable checklist", "recipe", recipe.ID, "error", err)
		}
		return c
	}
	c.checked = lo.Uniq(lo.Compact(lo.Map(checked, func(m string, _ int) string {
		return types.Normalize(m)
	})))
	return c
}

func (c *Checklist) Recipe() types.Recipe {
	return c.recipe
}

// Missing is the deduplicated, normalized list of ingredients to buy.
func (c *Checklist) Missing() []string {
	return slices.Clone(c.missing)
}

// Checked lists checked names in the order they were checked.
func (c *Checklist) Checked() []string {
	return slices.Clone(c.checked)
}

func (c *Checklist) IsChecked(name string) bool {
	return slices.Contains(c.checked, types.Normalize(name))
}

// Toggle flips name between checked and unchecked and persists the result.
// It reports whether name is checked afterwards.
func (c *Checklist) Toggle(ctx context.Context, name string) bool {
	name = types.Normalize(name)
	checked := !slices.Contains(c.checked, name)
	if checked {
		c.checked = append(c.checked, name)
	} else {
		c.checked = slices.DeleteFunc(c.checked, func(n string) bool { return n == name })
	}

	if err := kv.SetJSON(ctx, c.store, storageKey(c.recipe.ID), c.checked); err != nil {
		slog.ErrorContext(ctx, "failed to save checklist", "recipe", c.recipe.ID, "error", err)
	}
	return checked
}

// Clear unchecks everything and deletes the stored state for the recipe.
func (c *Checklist) Clear(ctx context.Context) {
	c.checked = []string{}
	if err := c.store.Remove(ctx, storageKey(c.recipe.ID)); err != nil {
		slog.ErrorContext(ctx, "failed to clear checklist", "recipe", c.recipe.ID, "error", err)
	}
}

// AllDone reports whether every missing ingredient is checked. A recipe with
// nothing missing is never done.
func (c *Checklist) AllDone() bool {
	return len(c.missing) > 0 && len(c.checked) == len(c.missing)
}

// Items pairs each missing ingredient with its measure from the recipe.
func (c *Checklist) Items() []Item {
	return lo.Map(c.missing, func(name string, _ int) Item {
		measure, _ := c.recipe.MeasureFor(name)
		return Item{
			Name:    name,
			Measure: measure,
			Checked: slices.Contains(c.checked, name),
		}
	})
}

func (c *Checklist) Summary() string {
	n := len(c.missing)
	s := fmt.Sprintf("Missing %d ingredient", n)
	if n != 1 {
		s += "s"
	}
	if c.AllDone() {
		s += " - All done!"
	}
	return s
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
