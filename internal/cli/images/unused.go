package images

import (
	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
	"github.com/lord007tn/BlogForge-sub000/internal/errors"
	imagepkg "github.com/lord007tn/BlogForge-sub000/internal/images"
)

var unusedCmd = &cobra.Command{
	Use:   "unused",
	Short: "List images no document references",
	Long: `Scan every document's body and frontmatter for mentions of each image
file name and list the images nothing references. The check errs on the
side of keeping files; nothing is deleted.`,
	Example: `  blogforge images unused`,
	RunE:    runUnused,
}

func init() {
	ImagesCmd.AddCommand(unusedCmd)
}

func runUnused(cmd *cobra.Command, args []string) error {
	rt, err := shared.NewRuntime(cmd)
	if err != nil {
		return err
	}

	unused, err := imagepkg.Unused(cmd.Context(), rt.Config, rt.Store)
	if err != nil {
		return errors.Wrap(err, errors.Runtime)
	}

	if len(unused) == 0 {
		rt.Printer.Successf("every image is referenced")
		return nil
	}
	for _, name := range unused {
		rt.Printer.Infof("- %s", name)
	}
	rt.Printer.Infof("")
	rt.Printer.Infof("%d image(s) unreferenced", len(unused))
	return nil
}
