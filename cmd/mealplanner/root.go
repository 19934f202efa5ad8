package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"mealplanner/internal/app"
	"mealplanner/internal/config"
	"mealplanner/internal/kv"
	"mealplanner/internal/logging"
	"mealplanner/internal/mealdb"
	"mealplanner/internal/recipes"
)

// env holds what every subcommand needs once the root command has started.
type env struct {
	ctrl     *app.Controller
	store    kv.Store
	stopLogs func(context.Context) error
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:          "mealplanner",
		Short:        "Find recipes for what is already in your fridge",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.start(cmd)
		},
	}

	root.AddCommand(
		newPantryCmd(e),
		newSearchCmd(e),
		newFavoritesCmd(e),
		newShoppingCmd(e),
	)
	return root
}

func (e *env) start(cmd *cobra.Command) error {
	ctx := cmd.Context()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	e.stopLogs, err = logging.Setup(ctx, cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}

	e.store, err = kv.MakeStore(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}

	engine := recipes.NewEngine(mealdb.NewClient(cfg.MealDB), recipes.WithTopN(cfg.Search.TopN))
	e.ctrl = app.NewController(e.store, engine)
	e.ctrl.Load(ctx)
	return nil
}

// close releases the store and flushes exported logs. It runs whether or not
// the command succeeded and is safe to call when start never ran.
func (e *env) close(ctx context.Context) error {
	var errs []error
	if c, ok := e.store.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close store: %w", err))
		}
	}
	if e.stopLogs != nil {
		if err := e.stopLogs(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to flush logs: %w", err))
		}
	}
	e.store, e.stopLogs = nil, nil
	return errors.Join(errs...)
}

// advise prints an advisory instead of failing the command.
func advise(w io.Writer, err error) error {
	var adv *app.Advisory
	if errors.As(err, &adv) {
		fmt.Fprintf(w, "%s: %s\n", adv.Title, adv.Message)
		return nil
	}
	return err
}
