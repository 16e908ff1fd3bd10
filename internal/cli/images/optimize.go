package images

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
	"github.com/lord007tn/BlogForge-sub000/internal/errors"
	imagepkg "github.com/lord007tn/BlogForge-sub000/internal/images"
	"github.com/lord007tn/BlogForge-sub000/internal/progress"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Downscale and re-encode oversized images",
	Long: `Re-encode every JPEG and PNG in the images directory, downscaling
images wider than --max-width. Files that are already optimal, or in a
format this command does not re-encode, are reported and left alone.`,
	Example: `  blogforge images optimize
  blogforge images optimize --max-width 1200`,
	RunE: runOptimize,
}

func init() {
	ImagesCmd.AddCommand(optimizeCmd)
	optimizeCmd.Flags().Int("max-width", imagepkg.DefaultMaxWidth, "Maximum width in pixels")
	optimizeCmd.Flags().Int("concurrency", 0, "Parallel workers (0 = one per CPU, minimum 4)")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	maxWidth, _ := cmd.Flags().GetInt("max-width")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	rt, err := shared.NewRuntime(cmd)
	if err != nil {
		return err
	}

	spin := progress.NewSpinner(rt.Caps)
	spin.Writer = rt.Printer.Err
	spin.Start("optimizing images")
	results, err := imagepkg.Optimize(cmd.Context(), rt.Config, maxWidth, concurrency)
	spin.Stop()
	if err != nil {
		return errors.Wrap(err, errors.Runtime)
	}

	if len(results) == 0 {
		rt.Printer.Infof("no images found")
		return nil
	}

	optimized, skipped := 0, 0
	for _, res := range results {
		if res.Skipped {
			skipped++
			rt.Printer.Infof("- %s skipped (%s)", res.Name, res.Reason)
			continue
		}
		optimized++
		verb := "re-encoded"
		if res.Resized {
			verb = "resized"
		}
		rt.Printer.Successf("%s %s, %s → %s", res.Name, verb,
			humanize.Bytes(uint64(res.OldSize)), humanize.Bytes(uint64(res.NewSize)))
	}

	rt.Printer.Infof("")
	rt.Printer.Infof("%d optimized, %d skipped", optimized, skipped)
	return nil
}
