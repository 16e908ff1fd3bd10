package category

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
	Short: "Create a new category",
	Long: `Create a new category record. The slug is derived from the title unless
--slug is passed; the record is validated before anything is written.`,
	Example: `  blogforge category create "Distributed Systems" --description "Consensus, queues, and scale."
  blogforge category create Tooling --icon wrench`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func init() {
	CategoryCmd.AddCommand(createCmd)
	f := createCmd.Flags()
	f.String("title", "", "Category title (defaults to the positional argument)")
	f.String("slug", "", "Slug override (defaults to the slugified title)")
	f.String("description", "", "Short description")
	f.String("image", "", "Cover image path or URL")
	f.String("icon", "", "Icon name")
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
			"a category needs a title",
			"blogforge category create <title> [flags]",
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

	fields := shared.CloneDefaults(rt.Config, config.CollectionCategory)
	fields["title"] = title
	fields["slug"] = slug
	if v, _ := flags.GetString("description"); v != "" {
		fields["description"] = v
	}
	if v, _ := flags.GetString("image"); v != "" {
		fields["image"] = v
	}
	if v, _ := flags.GetString("icon"); v != "" {
		fields["icon"] = v
	}

	sets, _ := flags.GetStringArray("set")
	values, err := shared.ParseSetFlags(sets)
	if err != nil {
		return err
	}
	shared.ApplyFieldValues(fields, values)

	return shared.CreateDocument(rt, &content.Document{
		Collection: config.CollectionCategory,
		Slug:       slug,
		Fields:     fields,
	})
}
