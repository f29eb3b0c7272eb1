package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/osuap/internal/allocator"
	"github.com/handiism/osuap/internal/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 2)
)

// Renderer writes a generation result as a human-readable report.
//
// The report has two parts: the pairing table, one row per slot with its
// kind, song and number of locations, and a summary of the sizing.
//
// Example:
//
//	r := report.NewRenderer(report.FormatMarkdown)
//	err := r.Render(os.Stdout, result)
//
//	// Result:
//	// | Slot | Kind | Song ID | Song | Locations |
//	// | --- | --- | ---: | --- | ---: |
//	// | Song 1 | starting | 1001 | Artist - Title | 2 |
//	// ...
type Renderer struct {
	format Format
}

// NewRenderer creates a Renderer for the given format.
func NewRenderer(format Format) *Renderer {
	return &Renderer{format: format}
}

// Render writes the report for result to w.
func Render(w io.Writer, result *allocator.Result, format Format) error {
	return NewRenderer(format).Render(w, result)
}

// Render writes the report for result to w.
func (r *Renderer) Render(w io.Writer, result *allocator.Result) error {
	t := pairingTable(result)

	var out string
	switch r.format {
	case FormatMarkdown:
		out = t.RenderMarkdown() + "\n\n" + markdownSummary(result)
	case FormatCSV:
		out = t.RenderCSV()
	case FormatHTML:
		out = t.RenderHTML()
	default:
		t.SetStyle(table.StyleLight)
		out = t.Render() + "\n" + styledSummary(result)
	}

	_, err := fmt.Fprintln(w, out)
	return err
}

func pairingTable(result *allocator.Result) table.Writer {
	perSlot := lo.CountValuesBy(result.Locations, func(l model.Location) string {
		return l.Slot
	})

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Slot", "Kind", "Song ID", "Song", "Locations"})
	for _, pair := range result.Pairs {
		locations := "-"
		if n, ok := perSlot[pair.Slot.Name]; ok {
			locations = strconv.Itoa(n)
		}
		t.AppendRow(table.Row{pair.Slot.Name, pair.Slot.Kind.String(), pair.Song.ID, pair.Song.String(), locations})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	return t
}

type summaryLine struct {
	label string
	value int
}

func summary(result *allocator.Result) []summaryLine {
	unlocks := lo.CountBy(result.ItemPool, func(item model.Item) bool {
		return item.Kind == model.ItemSlotUnlock
	})
	return []summaryLine{
		{"Songs", len(result.Pairs)},
		{"Locations", len(result.Locations)},
		{"Item pool", len(result.ItemPool)},
		{"Unlock items", unlocks},
		{"Progress points", result.ProgressPoints},
		{"Points to win", result.Goal.Count},
	}
}

func styledSummary(result *allocator.Result) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(result.Player))
	for _, line := range summary(result) {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-16s", line.label)))
		b.WriteString(valueStyle.Render(strconv.Itoa(line.value)))
	}
	if result.DisableDifficultyReduction {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Difficulty reduction mods disabled"))
	}
	return boxStyle.Render(b.String())
}

func markdownSummary(result *allocator.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", result.Player)
	for _, line := range summary(result) {
		fmt.Fprintf(&b, "- %s: %d\n", line.label, line.value)
	}
	if result.DisableDifficultyReduction {
		b.WriteString("- Difficulty reduction mods disabled\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
