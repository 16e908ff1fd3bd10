package article

import (
	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
	"github.com/lord007tn/BlogForge-sub000/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate [slug]",
	Short: "Validate article frontmatter",
	Long: `Validate one article, or every article with --all, against the
synthesized article schema. With --all files are checked concurrently and
results print in slug order.`,
	Example: `  blogforge article validate my-post
  blogforge article validate --all
  blogforge article validate --all --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		jsonOut, _ := cmd.Flags().GetBool("json")
		slug := ""
		if len(args) > 0 {
			slug = args[0]
		}
		return shared.RunValidate(cmd, config.CollectionArticle, slug, all, jsonOut)
	},
}

func init() {
	ArticleCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("all", false, "Validate every article")
	validateCmd.Flags().Bool("json", false, "Emit JSON instead of per-file blocks")
}
