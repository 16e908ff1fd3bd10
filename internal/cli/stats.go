package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
	"github.com/lord007tn/BlogForge-sub000/internal/errors"
	"github.com/lord007tn/BlogForge-sub000/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:     "stats",
	Short:   "Show corpus statistics",
	GroupID: GroupInsights,
	Long: `Show totals for the whole project: articles by status, word and
reading-time counts, authors, categories, and images.`,
	Example: `  blogforge stats
  blogforge stats --json`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().Bool("json", false, "Emit JSON instead of a table")
}

func runStats(cmd *cobra.Command, args []string) error {
	jsonOut, _ := cmd.Flags().GetBool("json")

	rt, err := shared.NewRuntime(cmd)
	if err != nil {
		return err
	}
	totals, err := stats.Collect(cmd.Context(), rt.Config, rt.Store)
	if err != nil {
		return errors.Wrap(err, errors.Runtime)
	}

	if jsonOut {
		return shared.PrintJSON(rt.Printer.Out, totals)
	}

	rows := [][]string{
		{"Articles", fmt.Sprintf("%d (%d published, %d drafts, %d featured)",
			totals.Articles, totals.Published, totals.Drafts, totals.Featured)},
		{"Words", humanize.Comma(int64(totals.Words))},
		{"Reading time", fmt.Sprintf("%d min", totals.ReadingMinutes)},
		{"Authors", fmt.Sprintf("%d", totals.Authors)},
		{"Categories", fmt.Sprintf("%d", totals.Categories)},
		{"Images", fmt.Sprintf("%d", totals.Images)},
	}
	shared.RenderTable(rt.Printer.Out, []string{"metric", "value"}, rows)
	return nil
}
