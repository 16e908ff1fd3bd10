package category

import (
	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
	"github.com/lord007tn/BlogForge-sub000/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate [slug]",
	Short: "Validate category frontmatter",
	Long:  "Validate one category, or every category with --all, against the category schema.",
	Example: `  blogforge category validate tooling
  blogforge category validate --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		jsonOut, _ := cmd.Flags().GetBool("json")
		slug := ""
		if len(args) > 0 {
			slug = args[0]
		}
		return shared.RunValidate(cmd, config.CollectionCategory, slug, all, jsonOut)
	},
}

func init() {
	CategoryCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("all", false, "Validate every category")
	validateCmd.Flags().Bool("json", false, "Emit JSON instead of per-file blocks")
}
