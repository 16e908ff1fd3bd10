package article

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
	"github.com/lord007tn/BlogForge-sub000/internal/config"
	"github.com/lord007tn/BlogForge-sub000/internal/content"
	"github.com/lord007tn/BlogForge-sub000/internal/errors"
)

var createCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new article",
	Long: `Create a new article from the configured defaults plus the given flags.

The slug is derived from the title unless --slug is passed. The document
is validated against the article schema before anything is written; an
invalid document is reported and nothing touches the disk.`,
	Example: `  blogforge article create "Go Concurrency Patterns" --author jane-doe
  blogforge article create "Release Notes" --tags releases,go --draft=false
  blogforge article create --title "عنوان المقال" --slug arabic-title --locale ar
  blogforge article create "Deep Dive" --set readingTime=12 --set isFeatured=true`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func init() {
	ArticleCmd.AddCommand(createCmd)
	f := createCmd.Flags()
	f.String("title", "", "Article title (defaults to the positional argument)")
	f.String("slug", "", "Slug override (defaults to the slugified title)")
	f.String("description", "", "Short description for listings and SEO")
	f.String("author", "", "Author slug")
	f.String("category", "", "Category slug")
	f.String("locale", "", "Language of the new article (defaults to defaultLanguage)")
	f.StringSlice("tags", nil, "Comma-separated tags")
	f.Bool("draft", true, "Create as a draft")
	f.String("body", "", "Initial article body")
	f.StringArray("set", nil, "Extra frontmatter field as key=value (repeatable)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	rt, err := shared.NewRuntime(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	title, _ := flags.GetString("title")
	if title == "" && len(args) > 0 {
		title = args[0]
	}
	if strings.TrimSpace(title) == "" {
		return errors.NewArgumentErrorWithUsage(
			"an article needs a title",
			"blogforge article create <title> [flags]",
			"pass the title as the first argument or with --title",
		)
	}

	slug, _ := flags.GetString("slug")
	if slug == "" {
		slug = content.Slugify(title)
	}
	if slug == "" {
		return errors.NewArgumentError(
			fmt.Sprintf("could not derive a slug from %q", title),
			"pass an explicit slug with --slug",
		)
	}

	fields := shared.CloneDefaults(rt.Config, config.CollectionArticle)
	fields["title"] = title
	fields["slug"] = slug
	if v, _ := flags.GetString("description"); v != "" {
		fields["description"] = v
	}
	if v, _ := flags.GetString("author"); v != "" {
		fields["author"] = v
	}
	if v, _ := flags.GetString("category"); v != "" {
		fields["category"] = v
	}
	if v, _ := flags.GetString("locale"); v != "" {
		fields["locale"] = v
	}
	if v, _ := flags.GetStringSlice("tags"); len(v) > 0 {
		fields["tags"] = v
	}
	if flags.Changed("draft") {
		v, _ := flags.GetBool("draft")
		fields["isDraft"] = v
	}

	// Required fields with sensible values when neither flags nor
	// defaultValues provided them.
	if _, ok := fields["locale"]; !ok {
		fields["locale"] = rt.Config.DefaultLanguage
	}
	if _, ok := fields["isDraft"]; !ok {
		fields["isDraft"] = true
	}
	if _, ok := fields["tags"]; !ok {
		fields["tags"] = []string{}
	}

	sets, _ := flags.GetStringArray("set")
	values, err := shared.ParseSetFlags(sets)
	if err != nil {
		return err
	}
	shared.ApplyFieldValues(fields, values)

	body, _ := flags.GetString("body")
	return shared.CreateDocument(rt, &content.Document{
		Collection: config.CollectionArticle,
		Slug:       slug,
		Fields:     fields,
		Body:       body,
	})
}
