package article

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
	"github.com/lord007tn/BlogForge-sub000/internal/config"
	"github.com/lord007tn/BlogForge-sub000/internal/errors"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search articles",
	Long: `Search articles case-insensitively. The query matches slugs, titles in
any language, descriptions, tags, and bodies.`,
	Example: `  blogforge article search concurrency
  blogforge article search "error handling" --json`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.NewArgumentErrorWithUsage("missing search query", cmd.UseLine())
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOut, _ := cmd.Flags().GetBool("json")
		rt, err := shared.NewRuntime(cmd)
		if err != nil {
			return err
		}
		query := strings.Join(args, " ")
		docs, err := rt.Store.Search(cmd.Context(), config.CollectionArticle, query)
		if err != nil {
			return errors.Wrap(err, errors.Runtime)
		}
		return renderArticles(rt, docs, jsonOut, fmt.Sprintf("no articles match %q", query))
	},
}

func init() {
	ArticleCmd.AddCommand(searchCmd)
	searchCmd.Flags().Bool("json", false, "Emit JSON instead of a table")
}
