package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/handiism/osuap/internal/catalog"
	"github.com/handiism/osuap/internal/config"
	"github.com/handiism/osuap/internal/generate"
	"github.com/handiism/osuap/internal/http"
)

func defaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// logProgress forwards manager progress events to a logger.
func logProgress(logger *slog.Logger) func(generate.ProgressEvent) {
	return func(event generate.ProgressEvent) {
		switch event.Level {
		case generate.LevelVerbose:
			logger.Debug(event.Message)
		case generate.LevelWarning:
			logger.Warn(event.Message)
		case generate.LevelError:
			logger.Error(event.Message)
		case generate.LevelSuccess:
			logger.Info(event.Message, "status", "ok")
		default:
			logger.Info(event.Message)
		}
	}
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func loadSettings(path string) (*config.Settings, error) {
	if path == "" {
		return config.DefaultSettings(), nil
	}
	return config.Load(path)
}

func loadCatalog(ctx context.Context, settings *config.Settings, sources []string) (*catalog.Catalog, error) {
	if len(sources) == 0 {
		sources = settings.CatalogSources
	}
	return catalog.NewLoader(http.NewClient(), settings.ToRetryPolicy()).Load(ctx, sources)
}
