// Package report renders generation results for people: the slot to song
// pairing and the sizing numbers behind it.
//
// Formats are table (terminal), markdown, csv and html. Only the table
// format is styled; the others are plain so they can be redirected to
// files.
//
//	format, err := report.ParseFormat("markdown")
//	if err != nil {
//	    return err
//	}
//	err = report.Render(os.Stdout, result, format)
package report
