package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mealplanner/internal/kv"
)

const lookupChicken = `{"meals":[{
	"idMeal":"1","strMeal":"Garlic Chicken","strCategory":"Chicken","strArea":"French",
	"strInstructions":"Cook it.","strMealThumb":"https://img/1.jpg","strTags":"Dinner",
	"strIngredient1":"Chicken","strMeasure1":"500g",
	"strIngredient2":"Garlic","strMeasure2":"2 cloves",
	"strIngredient3":"Onion","strMeasure3":""
}]}`

const lookupRice = `{"meals":[{
	"idMeal":"2","strMeal":"Chicken Fried Rice","strCategory":"Side","strArea":"Chinese",
	"strIngredient1":"Rice","strMeasure1":"1 cup",
	"strIngredient2":"Chicken","strMeasure2":"200g"
}]}`

func mealDBServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("i")
		switch r.URL.Path {
		case "/filter.php":
			switch q {
			case "chicken":
				_, _ = w.Write([]byte(`{"meals":[{"idMeal":"1","strMeal":"Garlic Chicken"},{"idMeal":"2","strMeal":"Chicken Fried Rice"}]}`))
			case "rice":
				_, _ = w.Write([]byte(`{"meals":[{"idMeal":"2","strMeal":"Chicken Fried Rice"}]}`))
			default:
				_, _ = w.Write([]byte(`{"meals":null}`))
			}
		case "/lookup.php":
			switch q {
			case "1":
				_, _ = w.Write([]byte(lookupChicken))
			case "2":
				_, _ = w.Write([]byte(lookupRice))
			default:
				_, _ = w.Write([]byte(`{"meals":null}`))
			}
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	out, err := execute(t, &env{}, stdin, args...)
	if err != nil {
		t.Fatalf("mealplanner %s: %v", strings.Join(args, " "), err)
	}
	return out
}

func execute(t *testing.T, e *env, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(e)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.ExecuteContext(context.Background())
	if cerr := e.close(context.Background()); cerr != nil {
		t.Fatalf("close after mealplanner %s: %v", strings.Join(args, " "), cerr)
	}
	return out.String(), err
}

func TestCLIEndToEnd(t *testing.T) {
	server := mealDBServer(t)
	t.Setenv("MEALDB_BASE_URL", server.URL)
	t.Setenv("MEALPLANNER_STORE", "file")
	t.Setenv("MEALPLANNER_DATA_DIR", t.TempDir())
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	out := run(t, "", "search")
	if !strings.Contains(out, "No Ingredients") {
		t.Fatalf("expected empty pantry advisory, got %q", out)
	}

	out = run(t, "", "pantry", "add", "Chicken", "rice", " CHICKEN ")
	if !strings.Contains(out, "added chicken") || !strings.Contains(out, "added rice") || !strings.Contains(out, "Already added") {
		t.Fatalf("unexpected add output: %q", out)
	}

	out = run(t, "", "search")
	rice := strings.Index(out, "Chicken Fried Rice")
	garlic := strings.Index(out, "Garlic Chicken")
	if rice < 0 || garlic < 0 || rice > garlic {
		t.Fatalf("expected fried rice (100%%) ranked above garlic chicken (33%%): %q", out)
	}
	if !strings.Contains(out, "100%") || !strings.Contains(out, " 33%") || !strings.Contains(out, "missing: garlic, onion") {
		t.Fatalf("unexpected search output: %q", out)
	}

	out = run(t, "", "search", "--category", "side")
	if strings.Contains(out, "Garlic Chicken") || !strings.Contains(out, "Chicken Fried Rice") {
		t.Fatalf("category filter not applied: %q", out)
	}

	out = run(t, "", "shopping", "1", "--toggle", "Garlic")
	if !strings.Contains(out, "[x] 2 cloves - Garlic") || !strings.Contains(out, "[ ] Onion") {
		t.Fatalf("unexpected shopping output: %q", out)
	}
	out = run(t, "", "shopping", "1", "--toggle", "onion")
	if !strings.Contains(out, "All done!") {
		t.Fatalf("expected all done: %q", out)
	}
	out = run(t, "", "shopping", "1", "--clear")
	if strings.Contains(out, "[x]") {
		t.Fatalf("expected cleared list: %q", out)
	}

	out = run(t, "", "favorites", "toggle", "1")
	if !strings.Contains(out, "added Garlic Chicken") {
		t.Fatalf("unexpected toggle output: %q", out)
	}
	out = run(t, "n\n", "favorites", "remove", "1")
	if !strings.Contains(out, "kept") {
		t.Fatalf("expected removal to be cancelled: %q", out)
	}
	out = run(t, "", "favorites", "list")
	if !strings.Contains(out, "Garlic Chicken") {
		t.Fatalf("expected favorite listed: %q", out)
	}
	out = run(t, "y\n", "favorites", "remove", "1")
	if !strings.Contains(out, "removed") {
		t.Fatalf("expected removal: %q", out)
	}
	out = run(t, "", "favorites", "list")
	if !strings.Contains(out, "No favorites yet") {
		t.Fatalf("expected no favorites: %q", out)
	}
}

func TestCloseRunsAfterFailedCommand(t *testing.T) {
	server := mealDBServer(t)
	t.Setenv("MEALDB_BASE_URL", server.URL)
	t.Setenv("MEALPLANNER_STORE", "sqlite")
	t.Setenv("MEALPLANNER_DATA_DIR", t.TempDir())
	t.Setenv("MEALPLANNER_SQLITE_PATH", "")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	e := &env{}
	cmd := newRootCmd(e)
	cmd.SetArgs([]string{"shopping", "does-not-exist"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatal("expected unknown recipe to fail")
	}

	store, ok := e.store.(*kv.SQLiteStore)
	if !ok {
		t.Fatalf("expected sqlite store, got %T", e.store)
	}
	if err := e.close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}
	if e.store != nil {
		t.Fatal("expected store released after close")
	}
	if _, err := store.Get(context.Background(), "favorites"); err == nil || errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected closed database error, got %v", err)
	}
}

func TestShoppingRejectsUnlistedIngredient(t *testing.T) {
	server := mealDBServer(t)
	t.Setenv("MEALDB_BASE_URL", server.URL)
	t.Setenv("MEALPLANNER_STORE", "file")
	t.Setenv("MEALPLANNER_DATA_DIR", t.TempDir())
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	run(t, "", "pantry", "add", "chicken")
	run(t, "", "search")

	out, err := execute(t, &env{}, "", "shopping", "1", "--toggle", "garlic", "--toggle", "saffron")
	if err == nil || !strings.Contains(err.Error(), "saffron") {
		t.Fatalf("expected saffron to be rejected, got err=%v out=%q", err, out)
	}

	out = run(t, "", "shopping", "1", "--toggle", "garlic")
	if strings.Contains(out, "All done!") || !strings.Contains(out, "[ ] Onion") {
		t.Fatalf("unlisted name must not count towards done: %q", out)
	}
}
