package category

import (
	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
	"github.com/lord007tn/BlogForge-sub000/internal/config"
)

var editCmd = &cobra.Command{
	Use:   "edit <slug>",
	Short: "Edit category frontmatter",
	Long: `Apply --set key=value pairs onto a category record. Values are parsed
as YAML; setting a key to null removes it. The record is re-validated
before the file is rewritten.`,
	Example: `  blogforge category edit tooling --set title=Toolchain
  blogforge category edit tooling --set icon=null`,
	Args: shared.SlugArgs(config.CollectionCategory),
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, _ := cmd.Flags().GetStringArray("set")
		return shared.RunEdit(cmd, config.CollectionCategory, args[0], sets)
	},
}

func init() {
	CategoryCmd.AddCommand(editCmd)
	editCmd.Flags().StringArray("set", nil, "Frontmatter field as key=value (repeatable)")
}
