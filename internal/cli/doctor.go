package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
	"github.com/lord007tn/BlogForge-sub000/internal/health"
)

var doctorCmd = &cobra.Command{
	Use:     "doctor",
	Short:   "Check the health of the current project",
	GroupID: GroupGettingStarted,
	Long: `Run health checks against the current blogforge project.

This command checks:
  - project root discovery and configuration resolution
  - content and image directories
  - the content.config.ts scan and schema synthesis
  - the configured minVersion against this build

Each check displays a ✓ if passed or ✗ with details if failed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rootFlag, _ := cmd.Flags().GetString("root")

		report := health.RunChecks(rootFlag)
		fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))

		if !report.Passed {
			return shared.NewExitError(shared.ExitRuntime)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
