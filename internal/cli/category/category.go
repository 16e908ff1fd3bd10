// Package category provides the category content commands.
// Includes: create, edit, list, delete, validate
package category

import (
	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
)

// CategoryCmd is the parent command for category operations.
var CategoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"categories", "cat"},
	Short:   "Manage blog categories",
	Long: `Manage the category records articles reference by slug.

Categories live as <slug>.md files in the configured categories directory.`,
	GroupID: shared.GroupContent,
}

// Register adds the category command tree to the root command.
func Register(rootCmd *cobra.Command) {
	rootCmd.AddCommand(CategoryCmd)
}
