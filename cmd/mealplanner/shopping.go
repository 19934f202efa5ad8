package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"mealplanner/internal/recipes/types"
)

func newShoppingCmd(e *env) *cobra.Command {
	var toggle []string
	var reset bool

	cmd := &cobra.Command{
		Use:   "shopping <recipe-id>",
		Short: "Show and tick off the shopping list for a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			r, ok := e.ctrl.FindRecipe(args[0])
			if !ok {
				return fmt.Errorf("no recipe %s in the last search or favorites", args[0])
			}

			list := e.ctrl.OpenShoppingList(ctx, r)
			defer e.ctrl.CloseShoppingList()
			missing := list.Missing()
			for _, name := range toggle {
				if !slices.Contains(missing, types.Normalize(name)) {
					return fmt.Errorf("%q is not on the shopping list for %s", name, r.Name)
				}
			}
			if reset {
				list.Clear(ctx)
			}
			for _, name := range toggle {
				list.Toggle(ctx, name)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Shopping list for %s\n%s\n", r.Name, list.Summary())
			items := list.Items()
			if len(items) == 0 {
				fmt.Fprintln(out, "You have all ingredients! You can start cooking right away.")
				return nil
			}
			for i, item := range items {
				box := "[ ]"
				if item.Checked {
					box = "[x]"
				}
				fmt.Fprintf(out, "%2d. %s %s\n", i+1, box, item.Label())
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&toggle, "toggle", nil, "check or uncheck ingredients")
	cmd.Flags().BoolVar(&reset, "clear", false, "uncheck everything")
	return cmd
}
