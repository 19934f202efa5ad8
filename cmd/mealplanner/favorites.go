package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newFavoritesCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage favorite recipes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List favorite recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e.ctrl.ToggleFavoritesView()
			favs := e.ctrl.Displayed()
			if len(favs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No favorites yet. Save recipes to favorites!")
				return nil
			}
			for _, r := range favs {
				printRecipe(cmd.OutOrStdout(), r, true)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <recipe-id>",
		Short: "Star or unstar a recipe from the last search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ok := e.ctrl.FindRecipe(args[0])
			if !ok {
				return fmt.Errorf("no recipe %s in the last search or favorites", args[0])
			}
			if e.ctrl.ToggleFavorite(cmd.Context(), r) {
				fmt.Fprintf(cmd.OutOrStdout(), "added %s to favorites\n", r.Name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s from favorites\n", r.Name)
			}
			return nil
		},
	})

	var yes bool
	remove := &cobra.Command{
		Use:   "remove <recipe-id>",
		Short: "Remove a favorite after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pending, err := e.ctrl.RequestFavoriteRemoval(args[0])
			if err != nil {
				return advise(cmd.OutOrStdout(), err)
			}
			if !yes {
				fmt.Fprint(cmd.OutOrStdout(), "Are you sure you want to remove this favorite? [y/N] ")
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
					pending.Cancel()
					fmt.Fprintln(cmd.OutOrStdout(), "kept")
					return nil
				}
			}
			if pending.Confirm(cmd.Context()) {
				fmt.Fprintln(cmd.OutOrStdout(), "removed")
			}
			return nil
		},
	}
	remove.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	cmd.AddCommand(remove)

	return cmd
}
