// Package images provides the image housekeeping commands.
// Includes: optimize, convert, unused
package images

import (
	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
)

// ImagesCmd is the parent command for image housekeeping.
var ImagesCmd = &cobra.Command{
	Use:     "images",
	Aliases: []string{"image", "img"},
	Short:   "Housekeep the images directory",
	Long: `Housekeeping for the project's images directory: downscale and
re-encode oversized files, convert between formats, and find images no
document references.`,
	GroupID: shared.GroupMedia,
}

// Register adds the images command tree to the root command.
func Register(rootCmd *cobra.Command) {
	rootCmd.AddCommand(ImagesCmd)
}
