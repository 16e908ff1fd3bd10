package author

import (
	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
	"github.com/lord007tn/BlogForge-sub000/internal/config"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <slug>",
	Aliases: []string{"rm"},
	Short:   "Delete an author",
	Long:    "Remove an author's file. Asks for confirmation unless --yes is passed.",
	Example: `  blogforge author delete jane-doe --yes`,
	Args:    shared.SlugArgs(config.CollectionAuthor),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		return shared.RunDelete(cmd, config.CollectionAuthor, args[0], yes)
	},
}

func init() {
	AuthorCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
