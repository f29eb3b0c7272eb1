package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/handiism/osuap/internal/config"
	"github.com/handiism/osuap/internal/generate"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type GenerateParams struct {
	Catalog  []string `short:"c" optional:"true" help:"Catalog file or URL, repeatable (defaults to the settings' sources)."`
	Player   []string `short:"p" required:"true" help:"Player as name=options-file, repeatable."`
	Seed     int64    `short:"s" optional:"true" help:"Master seed (random when not given; 0 is a valid seed)."`
	Out      string   `short:"o" optional:"true" help:"Output directory (defaults to the settings' output path)."`
	Settings string   `optional:"true" help:"Settings file (JSON)."`
	Verbose  bool     `short:"v" optional:"true" help:"Show verbose output." default:"false"`
}

func GenerateCmd() *cobra.Command {
	return boa.CmdT[GenerateParams]{
		Use:         "generate",
		Short:       "Generate slot data for every player",
		Long:        "Loads the catalog, pairs every player's slots with songs and writes one slot data file per player.",
		ParamEnrich: defaultParamEnricher(),
		RunFuncCtx: func(hctx *boa.HookContext, params *GenerateParams, cmd *cobra.Command, args []string) {
			if !hctx.HasValue(&params.Seed) {
				params.Seed = rand.Int64()
			}
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()
			if err := runGenerate(ctx, params, os.Stdout, os.Stderr); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "generate: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runGenerate(ctx context.Context, params *GenerateParams, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, params.Verbose)

	settings, err := loadSettings(params.Settings)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	if len(params.Catalog) > 0 {
		settings.CatalogSources = params.Catalog
	}
	if len(settings.CatalogSources) == 0 {
		return errors.New("no catalog given")
	}

	seed := params.Seed
	logger.Info("generating", "seed", seed, "players", len(params.Player))

	manager := generate.NewManager(settings, logProgress(logger))
	for _, arg := range params.Player {
		name, path, err := parsePlayer(arg)
		if err != nil {
			return err
		}
		opts, err := config.LoadOptions(path)
		if err != nil {
			return fmt.Errorf("player %s: %w", name, err)
		}
		if err := manager.AddPlayer(name, opts); err != nil {
			return err
		}
		logger.Debug("added player", "player", name, "options", path)
	}

	if err := manager.LoadCatalog(ctx); err != nil {
		return err
	}

	runErr := manager.Run(ctx, seed)

	paths, err := manager.WriteSlotData(ctx, params.Out)
	if err != nil {
		return errors.Join(runErr, err)
	}

	printGenerateSummary(stdout, manager, paths)
	return runErr
}

// parsePlayer splits "name=path".
func parsePlayer(arg string) (name, path string, err error) {
	name, path, ok := strings.Cut(arg, "=")
	name, path = strings.TrimSpace(name), strings.TrimSpace(path)
	if !ok || name == "" || path == "" {
		return "", "", fmt.Errorf("invalid player %q, expected name=options-file", arg)
	}
	return name, path, nil
}

func printGenerateSummary(w io.Writer, manager *generate.Manager, paths []string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Player", "Songs", "Locations", "Points", "To Win", "File"})

	written := 0
	for _, result := range manager.Results() {
		if result == nil {
			continue
		}
		path := ""
		if written < len(paths) {
			path = paths[written]
			written++
		}
		t.AppendRow(table.Row{result.Player, len(result.Pairs), len(result.Locations), result.ProgressPoints, result.Goal.Count, path})
	}
	t.SetCaption("generation %s", manager.GenerationID())
	t.Render()
}
