package author

import (
	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
	"github.com/lord007tn/BlogForge-sub000/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate [slug]",
	Short: "Validate author frontmatter",
	Long:  "Validate one author, or every author with --all, against the author schema.",
	Example: `  blogforge author validate jane-doe
  blogforge author validate --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		jsonOut, _ := cmd.Flags().GetBool("json")
		slug := ""
		if len(args) > 0 {
			slug = args[0]
		}
		return shared.RunValidate(cmd, config.CollectionAuthor, slug, all, jsonOut)
	},
}

func init() {
	AuthorCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("all", false, "Validate every author")
	validateCmd.Flags().Bool("json", false, "Emit JSON instead of per-file blocks")
}
