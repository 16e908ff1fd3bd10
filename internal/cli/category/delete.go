package category

import (
	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
	"github.com/lord007tn/BlogForge-sub000/internal/config"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <slug>",
	Aliases: []string{"rm"},
	Short:   "Delete a category",
	Long:    "Remove a category's file. Asks for confirmation unless --yes is passed.",
	Example: `  blogforge category delete tooling --yes`,
	Args:    shared.SlugArgs(config.CollectionCategory),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		return shared.RunDelete(cmd, config.CollectionCategory, args[0], yes)
	},
}

func init() {
	CategoryCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
