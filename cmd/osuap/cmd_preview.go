package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/fsnotify/fsnotify"
	"github.com/handiism/osuap/internal/allocator"
	"github.com/handiism/osuap/internal/catalog"
	"github.com/handiism/osuap/internal/config"
	"github.com/handiism/osuap/internal/generate"
	"github.com/handiism/osuap/internal/report"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type PreviewParams struct {
	Catalog  []string `short:"c" optional:"true" help:"Catalog file or URL, repeatable (defaults to the settings' sources)."`
	Options  string   `short:"o" required:"true" help:"Player options file (YAML or JSON)."`
	Player   string   `short:"p" optional:"true" help:"Player name shown in the report." default:"preview"`
	Seed     int64    `short:"s" optional:"true" help:"Seed to generate with." default:"1"`
	Format   string   `short:"f" optional:"true" help:"Report format: table, markdown, csv or html (defaults to the settings' report_format)."`
	Watch    bool     `short:"w" optional:"true" help:"Render again whenever the options file changes." default:"false"`
	Settings string   `optional:"true" help:"Settings file (JSON)."`
	Verbose  bool     `short:"v" optional:"true" help:"Show verbose output." default:"false"`
}

func PreviewCmd() *cobra.Command {
	return boa.CmdT[PreviewParams]{
		Use:         "preview",
		Short:       "Show what a player's options would generate",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *PreviewParams, cmd *cobra.Command, args []string) {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()
			if err := runPreview(ctx, params, os.Stdout, os.Stderr); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "preview: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runPreview(ctx context.Context, params *PreviewParams, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, params.Verbose)

	settings, err := loadSettings(params.Settings)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	format, err := report.ParseFormat(lo.CoalesceOrEmpty(params.Format, settings.ReportFormat))
	if err != nil {
		return err
	}
	cat, err := loadCatalog(ctx, settings, params.Catalog)
	if err != nil {
		return err
	}
	logger.Debug("catalog loaded", "songs", cat.Len())

	render := func() error {
		result, err := previewResult(cat, params)
		if err != nil {
			return err
		}
		return report.Render(stdout, result, format)
	}

	if !params.Watch {
		return render()
	}

	if err := render(); err != nil {
		logger.Error("preview failed", "error", err)
	}
	return watchFile(ctx, params.Options, logger, func() {
		if err := render(); err != nil {
			logger.Error("preview failed", "error", err)
		}
	})
}

func previewResult(cat *catalog.Catalog, params *PreviewParams) (*allocator.Result, error) {
	opts, err := config.LoadOptions(params.Options)
	if err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return allocator.Generate(params.Player, cat.Songs(), opts, generate.PlayerRNG(params.Seed, 0))
}

// watchFile calls onChange after every write to path, debounced, until ctx
// is done. The parent directory is watched so that editors replacing the
// file are noticed too.
func watchFile(ctx context.Context, path string, logger *slog.Logger, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	logger.Info("watching for changes", "file", abs)

	var (
		debounceTimer *time.Timer
		debounceMutex sync.Mutex
	)
	debounceDelay := 100 * time.Millisecond
	defer func() {
		debounceMutex.Lock()
		defer debounceMutex.Unlock()
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			debounceMutex.Lock()
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, onChange)
			debounceMutex.Unlock()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}
