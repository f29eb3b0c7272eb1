package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/handiism/osuap/internal/allocator"
	"github.com/handiism/osuap/internal/checker"
	"github.com/handiism/osuap/internal/generate"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type CheckParams struct {
	SlotData  string   `short:"d" required:"true" help:"Slot data file written by generate."`
	Plays     string   `short:"p" required:"true" help:"JSON file with a list of plays."`
	Unlocked  []string `short:"u" optional:"true" help:"Unlocked slots, comma separated (all slots when empty)."`
	Locations []int64  `short:"l" optional:"true" help:"Location ids known to the server. When empty, both location ids of every matched slot are listed, even where the generation only created the first."`
	Points    int      `optional:"true" help:"Progress points held, to report whether the goal is met." default:"-1"`
}

func CheckCmd() *cobra.Command {
	return boa.CmdT[CheckParams]{
		Use:         "check",
		Short:       "Show which locations a batch of plays would send",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *CheckParams, cmd *cobra.Command, args []string) {
			if err := runCheck(params, os.Stdout); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "check: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runCheck(params *CheckParams, stdout io.Writer) error {
	data, err := readSlotData(params.SlotData)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(params.Plays)
	if err != nil {
		return err
	}
	var plays []checker.Play
	if err := json.Unmarshal(raw, &plays); err != nil {
		return fmt.Errorf("%s: %w", params.Plays, err)
	}

	unlocked := lo.SliceToMap(params.Unlocked, func(slot string) (string, bool) {
		return strings.TrimSpace(slot), true
	})
	isUnlocked := func(slot string) bool {
		return len(unlocked) == 0 || unlocked[slot]
	}

	c := checker.New(data, params.Locations)

	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Played", "Beatmapset", "Passed", "Mods", "Locations", "Hints"})

	hints := checker.NewHintTracker()
	var sent []int64
	earned := 0
	for _, play := range plays {
		ids := c.Check(play, isUnlocked)
		sent = append(sent, ids...)
		n := hints.Record(play)
		earned += n
		t.AppendRow(table.Row{
			play.CreatedAt.Format("2006-01-02 15:04:05"),
			play.BeatmapsetID,
			play.Passed,
			strings.Join(play.Mods, ","),
			strings.Join(lo.Map(ids, func(id int64, _ int) string { return fmt.Sprint(id) }), ","),
			n,
		})
	}
	t.AppendFooter(table.Row{"", "", "", "Total", len(lo.Uniq(sent)), earned})
	t.Render()

	seconds, songs := hints.Remaining()
	_, _ = fmt.Fprintf(stdout, "Hints earned: %d (next after %ds of play or %d new passes)\n", earned, seconds, songs)

	if params.Points >= 0 {
		if c.Goal(params.Points) {
			_, _ = fmt.Fprintf(stdout, "Goal reached: %d/%d progress points\n", params.Points, data.PerformancePointsNeeded)
		} else {
			_, _ = fmt.Fprintf(stdout, "Goal not reached: %d/%d progress points\n", params.Points, data.PerformancePointsNeeded)
		}
	}
	return nil
}

// readSlotData reads either a generate envelope or bare slot data.
func readSlotData(path string) (allocator.SlotData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return allocator.SlotData{}, err
	}

	var envelope generate.Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return allocator.SlotData{}, fmt.Errorf("%s: %w", path, err)
	}
	if len(envelope.SlotData.Pairs) > 0 {
		return envelope.SlotData, nil
	}

	var data allocator.SlotData
	if err := json.Unmarshal(raw, &data); err != nil {
		return allocator.SlotData{}, fmt.Errorf("%s: %w", path, err)
	}
	if len(data.Pairs) == 0 {
		return allocator.SlotData{}, fmt.Errorf("%s: no pairs found", path)
	}
	return data, nil
}
