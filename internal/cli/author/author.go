// Package author provides the author content commands.
// Includes: create, edit, list, delete, validate
package author

import (
	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
)

// AuthorCmd is the parent command for author operations.
var AuthorCmd = &cobra.Command{
	Use:     "author",
	Aliases: []string{"authors"},
	Short:   "Manage blog authors",
	Long: `Manage the author records articles reference by slug.

Authors live as <slug>.md files in the configured authors directory.`,
	GroupID: shared.GroupContent,
}

// Register adds the author command tree to the root command.
func Register(rootCmd *cobra.Command) {
	rootCmd.AddCommand(AuthorCmd)
}
