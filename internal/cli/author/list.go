package author

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
	Short:   "List authors",
	Long:    "List every author with slug, name, and role.",
	Example: `  blogforge author list
  blogforge author list --json`,
	RunE: runList,
}

func init() {
	AuthorCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("json", false, "Emit JSON instead of a table")
}

// authorRow is the list line item for one author.
type authorRow struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	jsonOut, _ := cmd.Flags().GetBool("json")
	rt, err := shared.NewRuntime(cmd)
	if err != nil {
		return err
	}
	docs, err := rt.Store.List(cmd.Context(), config.CollectionAuthor)
	if err != nil {
		return errors.Wrap(err, errors.Runtime)
	}

	rows := make([]authorRow, 0, len(docs))
	for _, doc := range docs {
		rows = append(rows, authorRow{
			Slug: doc.Slug,
			Name: i18n.TextForLocale(doc.Fields["name"], rt.Config, ""),
			Role: i18n.TextForLocale(doc.Fields["role"], rt.Config, ""),
		})
	}

	if jsonOut {
		return shared.PrintJSON(rt.Printer.Out, rows)
	}
	if len(rows) == 0 {
		rt.Printer.Infof("no authors yet; create one with 'blogforge author create'")
		return nil
	}
	table := make([][]string, len(rows))
	for i, row := range rows {
		role := row.Role
		if role == "" {
			role = "-"
		}
		table[i] = []string{row.Slug, row.Name, role}
	}
	shared.RenderTable(rt.Printer.Out, []string{"slug", "name", "role"}, table)
	return nil
}
