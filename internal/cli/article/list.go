package article

import (
	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
	"github.com/lord007tn/BlogForge-sub000/internal/config"
	"github.com/lord007tn/BlogForge-sub000/internal/content"
	"github.com/lord007tn/BlogForge-sub000/internal/errors"
	"github.com/lord007tn/BlogForge-sub000/internal/i18n"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List articles",
	Long:    "List every article with its slug, title, draft status, and publication date.",
	Example: `  blogforge article list
  blogforge article list --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOut, _ := cmd.Flags().GetBool("json")
		rt, err := shared.NewRuntime(cmd)
		if err != nil {
			return err
		}
		docs, err := rt.Store.List(cmd.Context(), config.CollectionArticle)
		if err != nil {
			return errors.Wrap(err, errors.Runtime)
		}
		return renderArticles(rt, docs, jsonOut,
			"no articles yet; create one with 'blogforge article create'")
	},
}

func init() {
	ArticleCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("json", false, "Emit JSON instead of a table")
}

// articleRow is the list/search line item for one article.
type articleRow struct {
	Slug   string `json:"slug"`
	Title  string `json:"title"`
	Status string `json:"status"`
	Date   string `json:"date,omitempty"`
}

func articleRows(cfg *config.Config, docs []*content.Document) []articleRow {
	rows := make([]articleRow, 0, len(docs))
	for _, doc := range docs {
		status := "published"
		if draft, _ := doc.Fields["isDraft"].(bool); draft {
			status = "draft"
		}
		date, _ := doc.Fields["publishedAt"].(string)
		rows = append(rows, articleRow{
			Slug:   doc.Slug,
			Title:  i18n.TextForLocale(doc.Fields["title"], cfg, ""),
			Status: status,
			Date:   date,
		})
	}
	return rows
}

// renderArticles prints docs as a table, JSON, or the empty-corpus notice.
// Shared between list and search so both speak the same format.
func renderArticles(rt *shared.Runtime, docs []*content.Document, jsonOut bool, emptyNotice string) error {
	rows := articleRows(rt.Config, docs)
	if jsonOut {
		return shared.PrintJSON(rt.Printer.Out, rows)
	}
	if len(rows) == 0 {
		rt.Printer.Infof("%s", emptyNotice)
		return nil
	}
	table := make([][]string, len(rows))
	for i, row := range rows {
		date := row.Date
		if date == "" {
			date = "-"
		}
		table[i] = []string{row.Slug, row.Title, row.Status, date}
	}
	shared.RenderTable(rt.Printer.Out, []string{"slug", "title", "status", "date"}, table)
	return nil
}
