package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"
)

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "osuap",
		Short:   "Song pool generator for osu! multiworld sessions",
		Version: appVersion(),
		SubCmds: []*cobra.Command{
			GenerateCmd(),
			PreviewCmd(),
			CheckCmd(),
			OptionsCmd(),
		},
	}.Run()
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
