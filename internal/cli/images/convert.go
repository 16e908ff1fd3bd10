package images

import (
	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
	"github.com/lord007tn/BlogForge-sub000/internal/errors"
	imagepkg "github.com/lord007tn/BlogForge-sub000/internal/images"
)

var convertCmd = &cobra.Command{
	Use:   "convert <name> --to <format>",
	Short: "Convert an image to jpg or png",
	Long: `Convert one image from the images directory to another format. The
source file is kept; the converted copy is written next to it. WebP and
GIF inputs are decodable, so this is the way to bring them into the
optimizable set.`,
	Example: `  blogforge images convert hero.webp --to jpg
  blogforge images convert diagram.gif --to png`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.NewArgumentErrorWithUsage("expected exactly one image name", cmd.UseLine())
		}
		return nil
	},
	RunE: runConvert,
}

func init() {
	ImagesCmd.AddCommand(convertCmd)
	convertCmd.Flags().String("to", "", "Target format: jpg or png")
	convertCmd.MarkFlagRequired("to")
}

func runConvert(cmd *cobra.Command, args []string) error {
	to, _ := cmd.Flags().GetString("to")

	rt, err := shared.NewRuntime(cmd)
	if err != nil {
		return err
	}

	target, err := imagepkg.Convert(rt.Config, args[0], to)
	if err != nil {
		return errors.Wrap(err, errors.Runtime)
	}
	rt.Printer.Successf("wrote %s", shared.RelPath(rt.Root, target))
	return nil
}
