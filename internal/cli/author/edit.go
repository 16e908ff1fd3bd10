package author

import (
	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
	"github.com/lord007tn/BlogForge-sub000/internal/config"
)

var editCmd = &cobra.Command{
	Use:   "edit <slug>",
	Short: "Edit author frontmatter",
	Long: `Apply --set key=value pairs onto an author record. Values are parsed
as YAML; setting a key to null removes it. The record is re-validated
before the file is rewritten.`,
	Example: `  blogforge author edit jane-doe --set bio='Writes about Go.'
  blogforge author edit jane-doe --set role=null`,
	Args: shared.SlugArgs(config.CollectionAuthor),
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, _ := cmd.Flags().GetStringArray("set")
		return shared.RunEdit(cmd, config.CollectionAuthor, args[0], sets)
	},
}

func init() {
	AuthorCmd.AddCommand(editCmd)
	editCmd.Flags().StringArray("set", nil, "Frontmatter field as key=value (repeatable)")
}
