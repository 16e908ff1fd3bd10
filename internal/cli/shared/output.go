package shared

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/lord007tn/BlogForge-sub000/internal/progress"
	"github.com/lord007tn/BlogForge-sub000/internal/schema"
)

// PrintValidationResult renders one document's validation outcome:
// a checked line for valid documents, a crossed line plus indented
// field errors otherwise.
func PrintValidationResult(p *progress.Printer, label string, res *schema.Result) {
	if res.Valid {
		p.Successf("%s is valid", label)
		return
	}
	p.Failuref("%s has %d error(s)", label, len(res.Errors))
	for _, fieldErr := range res.Errors {
		p.Infof("  %s", fieldErr.Line())
	}
}

// PrintValidationSummary renders the closing line of a bulk validation run.
func PrintValidationSummary(p *progress.Printer, total, failed int) {
	p.Infof("")
	if failed == 0 {
		p.Successf("%d of %d files valid", total, total)
		return
	}
	p.Failuref("%d of %d files valid", total-failed, total)
}

// RenderTable writes rows in aligned columns with an upper-case header.
func RenderTable(w io.Writer, header []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	upper := make([]string, len(header))
	for i, h := range header {
		upper[i] = strings.ToUpper(h)
	}
	fmt.Fprintln(tw, strings.Join(upper, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

// PrintJSON writes v as indented JSON followed by a newline.
func PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
