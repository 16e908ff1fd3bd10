// Package article provides the article content commands.
// Includes: create, edit, list, search, publish, delete, validate
package article

import (
	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
)

// ArticleCmd is the parent command for article operations.
var ArticleCmd = &cobra.Command{
	Use:     "article",
	Aliases: []string{"articles", "a"},
	Short:   "Manage blog articles",
	Long: `Manage the Markdown articles of the project.

Articles live as <slug>.md files in the configured articles directory.
Frontmatter is validated against the synthesized article schema before
every write.`,
	GroupID: shared.GroupContent,
}

// Register adds the article command tree to the root command.
func Register(rootCmd *cobra.Command) {
	rootCmd.AddCommand(ArticleCmd)
}
