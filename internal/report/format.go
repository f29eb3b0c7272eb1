package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned by ParseFormat for names it does not know.
var ErrUnknownFormat = errors.New("unknown report format")

// Format represents the supported report output formats.
//
// Each format suits a different consumer:
//   - Table: box-drawn table for terminals, with a styled summary
//   - Markdown: pipe table plus summary list, for pasting into issues
//   - CSV: pairing rows only, for spreadsheets
//   - HTML: pairing table only, for embedding in pages
type Format int

const (
	// FormatTable renders a light box-drawn table (the default).
	FormatTable Format = iota

	// FormatMarkdown renders a GitHub-flavoured pipe table.
	FormatMarkdown

	// FormatCSV renders comma-separated rows with a header line.
	FormatCSV

	// FormatHTML renders a <table> element.
	FormatHTML
)

// String returns the name ParseFormat accepts.
func (f Format) String() string {
	switch f {
	case FormatTable:
		return "table"
	case FormatMarkdown:
		return "markdown"
	case FormatCSV:
		return "csv"
	case FormatHTML:
		return "html"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat converts a format name to a Format. Names are case
// insensitive; "md" is accepted for markdown and an empty name means table.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "table":
		return FormatTable, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "csv":
		return FormatCSV, nil
	case "html":
		return FormatHTML, nil
	}
	return FormatTable, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}
