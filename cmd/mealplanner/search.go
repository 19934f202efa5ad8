package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"mealplanner/internal/recipes"
	"mealplanner/internal/recipes/types"
)

func newSearchCmd(e *env) *cobra.Command {
	var category, tag string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search recipes for the ingredients in your pantry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.ErrOrStderr(), "Searching for recipes...")
			results, err := e.ctrl.Search(cmd.Context())
			if err != nil {
				return advise(cmd.OutOrStdout(), err)
			}

			results = recipes.FilterByTag(recipes.FilterByCategory(results, category), tag)
			for _, r := range results {
				printRecipe(cmd.OutOrStdout(), r, e.ctrl.State().Favorites.Contains(r.ID))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only show recipes in this category")
	cmd.Flags().StringVar(&tag, "tag", "", "only show recipes with a matching tag")
	return cmd
}

func printRecipe(w io.Writer, r types.Recipe, favorite bool) {
	star := " "
	if favorite {
		star = "*"
	}
	fmt.Fprintf(w, "%s %3d%% [%s] %s  (id %s)\n", star, r.MatchPercentage, r.Band(), r.Name, r.ID)

	var where []string
	if r.Area != "" {
		where = append(where, r.Area)
	}
	if r.Category != "" {
		where = append(where, r.Category)
	}
	if len(where) > 0 {
		fmt.Fprintf(w, "      %s\n", strings.Join(where, " / "))
	}
	fmt.Fprintf(w, "      %d / %d ingredients available\n", r.AvailableCount(), len(r.Ingredients))
	if len(r.MissingIngredients) > 0 {
		fmt.Fprintf(w, "      missing: %s\n", strings.Join(r.MissingIngredients, ", "))
	}
}
