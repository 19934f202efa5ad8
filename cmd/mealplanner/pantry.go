package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPantryCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pantry",
		Short: "Manage the ingredients you have on hand",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List pantry ingredients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items := e.ctrl.State().Pantry.List()
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Your pantry is empty. Add ingredients with: mealplanner pantry add <name>")
				return nil
			}
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", item.ID, item.Name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <ingredient>...",
		Short: "Add ingredients to the pantry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				item, err := e.ctrl.AddIngredient(cmd.Context(), name)
				if err != nil {
					if err := advise(cmd.OutOrStdout(), err); err != nil {
						return err
					}
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", item.Name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <id>...",
		Short: "Remove pantry ingredients by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, id := range args {
				e.ctrl.RemoveIngredient(cmd.Context(), id)
			}
			return nil
		},
	})

	return cmd
}
