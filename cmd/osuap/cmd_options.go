package main

import (
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/handiism/osuap/internal/config"
	"github.com/spf13/cobra"
)

type OptionsInitParams struct {
	Path  string `pos:"true" required:"true" help:"File to write, .yaml/.yml for YAML, anything else for JSON."`
	Force bool   `short:"f" optional:"true" help:"Overwrite an existing file." default:"false"`
}

type OptionsValidateParams struct {
	Paths []string `pos:"true" required:"true" help:"Option files to validate."`
}

func OptionsCmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:   "options",
		Short: "Create and check player option files",
		SubCmds: []*cobra.Command{
			optionsInitCmd(),
			optionsValidateCmd(),
		},
	}.ToCobra()
}

func optionsInitCmd() *cobra.Command {
	return boa.CmdT[OptionsInitParams]{
		Use:         "init",
		Short:       "Write an options file with default values",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *OptionsInitParams, cmd *cobra.Command, args []string) {
			if err := runOptionsInit(params, os.Stdout); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "options init: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func optionsValidateCmd() *cobra.Command {
	return boa.CmdT[OptionsValidateParams]{
		Use:         "validate",
		Short:       "Check option files against the allowed ranges",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *OptionsValidateParams, cmd *cobra.Command, args []string) {
			if err := runOptionsValidate(params, os.Stdout); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "options validate: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runOptionsInit(params *OptionsInitParams, stdout io.Writer) error {
	if !params.Force {
		if _, err := os.Stat(params.Path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", params.Path)
		}
	}
	if err := config.DefaultOptions().Save(params.Path); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(stdout, "Wrote %s\n", params.Path)
	return nil
}

func runOptionsValidate(params *OptionsValidateParams, stdout io.Writer) error {
	failed := 0
	for _, path := range params.Paths {
		opts, err := config.LoadOptions(path)
		if err == nil {
			err = opts.Validate()
		}
		if err != nil {
			failed++
			_, _ = fmt.Fprintf(stdout, "%s: invalid\n  %v\n", path, err)
			continue
		}
		_, _ = fmt.Fprintf(stdout, "%s: ok\n", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) invalid", failed, len(params.Paths))
	}
	return nil
}
