// Package logging installs the process-wide slog logger.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"mealplanner/internal/config"
)

const instrumentationName = "mealplanner"

// Setup makes slog.Default write text records to w at the configured level.
// With an OTLP endpoint configured, records are exported over OTLP/HTTP as
// well. The returned func flushes and stops the exporter.
func Setup(ctx context.Context, w io.Writer, cfg config.LogConfig) (func(context.Context) error, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	handler := slog.Handler(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	shutdown := func(context.Context) error { return nil }

	if cfg.OTLPEndpoint != "" {
		// the exporter reads OTEL_EXPORTER_OTLP_* itself
		exporter, err := otlploghttp.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("create otlp log exporter: %w", err)
		}
		provider := sdklog.NewLoggerProvider(sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)))
		handler = slog.NewMultiHandler(handler, otelslog.NewHandler(instrumentationName, otelslog.WithLoggerProvider(provider)))
		shutdown = provider.Shutdown
	}

	slog.SetDefault(slog.New(handler))
	return shutdown, nil
}
