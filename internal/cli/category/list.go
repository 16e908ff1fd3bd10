package category

import (
	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
	"github.com/lord007tn/BlogForge-sub000/internal/config"
	"github.com/lord007tn/BlogForge-sub000/internal/errors"
	"github.com/lord007tn/BlogForge-sub000/internal/i18n"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List categories",
	Long:    "List every category with slug and title.",
	Example: `  blogforge category list
  blogforge category list --json`,
	RunE: runList,
}

func init() {
	CategoryCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("json", false, "Emit JSON instead of a table")
}

// categoryRow is the list line item for one category.
type categoryRow struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

func runList(cmd *cobra.Command, args []string) error {
	jsonOut, _ := cmd.Flags().GetBool("json")
	rt, err := shared.NewRuntime(cmd)
	if err != nil {
		return err
	}
	docs, err := rt.Store.List(cmd.Context(), config.CollectionCategory)
	if err != nil {
		return errors.Wrap(err, errors.Runtime)
	}

	rows := make([]categoryRow, 0, len(docs))
	for _, doc := range docs {
		rows = append(rows, categoryRow{
			Slug:  doc.Slug,
			Title: i18n.TextForLocale(doc.Fields["title"], rt.Config, ""),
		})
	}

	if jsonOut {
		return shared.PrintJSON(rt.Printer.Out, rows)
	}
	if len(rows) == 0 {
		rt.Printer.Infof("no categories yet; create one with 'blogforge category create'")
		return nil
	}
	table := make([][]string, len(rows))
	for i, row := range rows {
		table[i] = []string{row.Slug, row.Title}
	}
	shared.RenderTable(rt.Printer.Out, []string{"slug", "title"}, table)
	return nil
}
