package article

import (
	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
	"github.com/lord007tn/BlogForge-sub000/internal/config"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <slug>",
	Aliases: []string{"rm"},
	Short:   "Delete an article",
	Long:    "Remove an article's file. Asks for confirmation unless --yes is passed.",
	Example: `  blogforge article delete my-post
  blogforge article delete my-post --yes`,
	Args: shared.SlugArgs(config.CollectionArticle),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		return shared.RunDelete(cmd, config.CollectionArticle, args[0], yes)
	},
}

func init() {
	ArticleCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
