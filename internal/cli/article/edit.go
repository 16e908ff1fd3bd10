package article

import (
	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
	"github.com/lord007tn/BlogForge-sub000/internal/config"
)

var editCmd = &cobra.Command{
	Use:   "edit <slug>",
	Short: "Edit article frontmatter",
	Long: `Apply --set key=value pairs onto an article's frontmatter.

Values are parsed as YAML, so --set isDraft=false sets a boolean and
--set tags=[go, cli] sets a list. Setting a key to null removes it.
The document is re-validated before the file is rewritten; the body and
the existing key order are preserved.`,
	Example: `  blogforge article edit my-post --set title='A Better Title'
  blogforge article edit my-post --set isFeatured=true --set readingTime=8
  blogforge article edit my-post --set canonicalUrl=null`,
	Args: shared.SlugArgs(config.CollectionArticle),
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, _ := cmd.Flags().GetStringArray("set")
		return shared.RunEdit(cmd, config.CollectionArticle, args[0], sets)
	},
}

func init() {
	ArticleCmd.AddCommand(editCmd)
	editCmd.Flags().StringArray("set", nil, "Frontmatter field as key=value (repeatable)")
}
