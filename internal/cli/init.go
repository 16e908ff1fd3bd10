package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/config"
	"github.com/lord007tn/BlogForge-sub000/internal/content"
	"github.com/lord007tn/BlogForge-sub000/internal/errors"
	"github.com/lord007tn/BlogForge-sub000/internal/progress"
	"github.com/lord007tn/BlogForge-sub000/internal/project"
)

var initCmd = &cobra.Command{
	Use:     "init",
	Short:   "Scaffold a blogforge project",
	GroupID: GroupGettingStarted,
	Long: `Create the starter configuration file and content directories.

init writes blogforge.config.json with default settings, creates the
articles, authors, categories, and images directories, and seeds a sample
author, category, and article so every command has something to work on.`,
	Example: `  blogforge init
  blogforge init --root ./my-blog
  blogforge init --force`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing configuration file")
}

// runInit scaffolds into --root or the working directory. It never uses
// project discovery: init is the one command that runs before a project
// exists.
func runInit(cmd *cobra.Command, args []string) error {
	rootFlag, _ := cmd.Flags().GetString("root")
	force, _ := cmd.Flags().GetBool("force")
	noColor, _ := cmd.Flags().GetBool("no-color")

	printer := progress.NewPrinter(progress.Detect(noColor))
	printer.Out = cmd.OutOrStdout()
	printer.Err = cmd.ErrOrStderr()

	root := rootFlag
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return errors.Wrap(err, errors.Runtime)
		}
		root = wd
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return errors.Wrap(err, errors.Runtime)
	}

	path, err := project.WriteStarterConfig(root, force)
	if err != nil {
		return errors.Wrap(err, errors.Argument,
			"pass --force to replace the existing configuration file")
	}
	printer.Successf("wrote %s", path)

	result := config.Load(root)
	created, err := project.ScaffoldDirs(result.Config)
	if err != nil {
		return errors.Wrap(err, errors.Runtime)
	}
	for _, dir := range created {
		printer.Successf("created %s", dir)
	}

	store := content.NewStore(result.Config)
	for _, doc := range starterContent() {
		if store.Exists(doc.Collection, doc.Slug) {
			continue
		}
		if err := store.Create(doc); err != nil {
			return errors.WrapWithMessage(err, errors.Runtime, "seeding starter content")
		}
		printer.Successf("seeded %s %q", doc.Collection, doc.Slug)
	}

	printer.Infof("")
	printer.Infof("Project ready. Try:")
	printer.Infof("  blogforge article create \"My First Post\"")
	printer.Infof("  blogforge article list")
	return nil
}

// starterContent returns the sample documents seeded by init, one per
// collection, each valid against the base schemas.
func starterContent() []*content.Document {
	return []*content.Document{
		{
			Collection: config.CollectionAuthor,
			Slug:       "admin",
			Fields: map[string]any{
				"slug": "admin",
				"name": "Admin",
				"bio":  "Write a short bio here.",
			},
		},
		{
			Collection: config.CollectionCategory,
			Slug:       "general",
			Fields: map[string]any{
				"title":       "General",
				"description": "Articles that do not fit a narrower topic yet.",
				"slug":        "general",
			},
		},
		{
			Collection: config.CollectionArticle,
			Slug:       "hello-world",
			Fields: map[string]any{
				"title":       "Hello World",
				"description": "Your first article. Edit it, publish it, or delete it.",
				"author":      "admin",
				"tags":        []string{"getting-started"},
				"locale":      "en",
				"isDraft":     true,
				"slug":        "hello-world",
				"category":    "general",
			},
			Body: "Welcome to your new blog. This article was created by blogforge init.\n\nReplace this text with your own writing, then run:\n\n    blogforge article publish hello-world\n",
		},
	}
}
