// Package cli provides the Cobra-based commands of the blogforge tool.
// It wires the content commands (article, author, category) together with
// media housekeeping (images), insight commands (stats, seo), and project
// utilities (init, doctor, version) onto a single root with grouped help.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/article"
	"github.com/lord007tn/BlogForge-sub000/internal/cli/author"
	"github.com/lord007tn/BlogForge-sub000/internal/cli/category"
	"github.com/lord007tn/BlogForge-sub000/internal/cli/images"
	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
	"github.com/lord007tn/BlogForge-sub000/internal/errors"
)

// Command group IDs for organizing help output (re-exported from shared)
const (
	GroupGettingStarted = shared.GroupGettingStarted
	GroupContent        = shared.GroupContent
	GroupMedia          = shared.GroupMedia
	GroupInsights       = shared.GroupInsights
)

var rootCmd = &cobra.Command{
	Use:   "blogforge",
	Short: "Manage Markdown blog content from the command line",
	Long: `blogforge manages the Markdown content of a static blog: articles,
authors, and categories whose front matter is validated against schemas
synthesized from your content.config.ts and project configuration.

Content lives in plain directories of .md files. Every command re-reads
the project from disk, so blogforge is safe to mix with editors, git,
and static site generators.`,
	Example: `  # Scaffold a new project in the current directory
  blogforge init

  # Create and publish an article
  blogforge article create "Go Concurrency Patterns"
  blogforge article publish go-concurrency-patterns

  # Validate every document against the synthesized schemas
  blogforge article validate --all

  # Housekeeping and insights
  blogforge images optimize
  blogforge seo check
  blogforge doctor`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns the process exit code.
// CLI errors print their remediation block here exactly once; bare exit
// errors were already reported by the command that returned them.
func Execute() int {
	// Cobra creates the completion command lazily during dispatch; force it
	// now so the install subcommand is routable on the first invocation.
	rootCmd.InitDefaultCompletionCmd()
	attachCompletionInstall(rootCmd)

	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.PrintError(cliErr)
	} else if !IsExitError(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return ExitCode(err)
}

func init() {
	// Define command groups in display order
	rootCmd.AddGroup(&cobra.Group{ID: GroupGettingStarted, Title: "Getting Started:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupContent, Title: "Content:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupMedia, Title: "Media:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupInsights, Title: "Insights:"})

	// Assign built-in help and completion to the getting-started group
	rootCmd.SetHelpCommandGroupID(GroupGettingStarted)
	rootCmd.SetCompletionCommandGroupID(GroupGettingStarted)

	// Flag parse failures map to the argument exit code
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine())
	})

	// Global flags
	rootCmd.PersistentFlags().StringP("root", "r", "", "Project root (default: discovered from the working directory)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	// Register commands from subpackages
	article.Register(rootCmd)
	author.Register(rootCmd)
	category.Register(rootCmd)
	images.Register(rootCmd)
}
