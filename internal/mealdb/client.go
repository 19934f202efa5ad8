package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"mealplanner/internal/config"
)

const maxResponseBytes = 2 << 20

// Client reads meals from TheMealDB. Every read is best effort: failures are
// logged and reported as an empty result.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client
}

type mealsResponse[T any] struct {
	Meals []T `json:"meals"`
}

func NewClient(cfg config.MealDBConfig) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = config.DefaultMealDBBaseURL
	}

	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = cfg.RetryMax
	httpClient.Logger = slog.Default()
	if cfg.HTTPClient != nil {
		httpClient.HTTPClient = cfg.HTTPClient
	} else if cfg.Timeout > 0 {
		httpClient.HTTPClient.Timeout = cfg.Timeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ListByIngredient returns the meals that use ingredient.
func (c *Client) ListByIngredient(ctx context.Context, ingredient string) []MealSummary {
	meals, err := getMeals[MealSummary](ctx, c, "filter.php", ingredient)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list meals by ingredient", "ingredient", ingredient, "error", err)
		return []MealSummary{}
	}
	return meals
}

// LookupByID returns the full meal record, or nil when the meal can't be
// fetched or doesn't exist.
func (c *Client) LookupByID(ctx context.Context, id string) *MealDetail {
	meals, err := getMeals[MealDetail](ctx, c, "lookup.php", id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to look up meal", "id", id, "error", err)
		return nil
	}
	if len(meals) == 0 {
		slog.DebugContext(ctx, "meal not found", "id", id)
		return nil
	}
	return &meals[0]
}

func getMeals[T any](ctx context.Context, c *Client, endpoint, arg string) ([]T, error) {
	reqURL := c.baseURL + "/" + endpoint + "?" + url.Values{"i": {arg}}.Encode()
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", endpoint, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var parsed mealsResponse[T]
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return parsed.Meals, nil
}
