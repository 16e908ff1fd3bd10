package author

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
	Use:   "create [name]",
	Short: "Create a new author",
	Long: `Create a new author record. The slug is derived from the name unless
--slug is passed; the record is validated before anything is written.`,
	Example: `  blogforge author create "Jane Doe" --bio "Writes about Go and infra."
  blogforge author create "Jane Doe" --role "Staff Engineer" --set socialLinks='{github: jdoe}'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func init() {
	AuthorCmd.AddCommand(createCmd)
	f := createCmd.Flags()
	f.String("name", "", "Author display name (defaults to the positional argument)")
	f.String("slug", "", "Slug override (defaults to the slugified name)")
	f.String("bio", "", "Short biography")
	f.String("avatar", "", "Avatar image path or URL")
	f.String("role", "", "Role or job title")
	f.StringArray("set", nil, "Extra frontmatter field as key=value (repeatable)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	rt, err := shared.NewRuntime(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	name, _ := flags.GetString("name")
	if name == "" && len(args) > 0 {
		name = args[0]
	}
	if strings.TrimSpace(name) == "" {
		return errors.NewArgumentErrorWithUsage(
			"an author needs a name",
			"blogforge author create <name> [flags]",
			"pass the name as the first argument or with --name",
		)
	}

	slug, _ := flags.GetString("slug")
	if slug == "" {
		slug = content.Slugify(name)
	}
	if slug == "" {
		return errors.NewArgumentError(
			fmt.Sprintf("could not derive a slug from %q", name),
			"pass an explicit slug with --slug",
		)
	}

	fields := shared.CloneDefaults(rt.Config, config.CollectionAuthor)
	fields["name"] = name
	fields["slug"] = slug
	if v, _ := flags.GetString("bio"); v != "" {
		fields["bio"] = v
	}
	if v, _ := flags.GetString("avatar"); v != "" {
		fields["avatar"] = v
	}
	if v, _ := flags.GetString("role"); v != "" {
		fields["role"] = v
	}

	sets, _ := flags.GetStringArray("set")
	values, err := shared.ParseSetFlags(sets)
	if err != nil {
		return err
	}
	shared.ApplyFieldValues(fields, values)

	return shared.CreateDocument(rt, &content.Document{
		Collection: config.CollectionAuthor,
		Slug:       slug,
		Fields:     fields,
	})
}
