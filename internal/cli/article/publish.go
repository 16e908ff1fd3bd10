package article

import (
	stderrors "errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
	"github.com/lord007tn/BlogForge-sub000/internal/config"
	"github.com/lord007tn/BlogForge-sub000/internal/content"
	"github.com/lord007tn/BlogForge-sub000/internal/errors"
)

var publishCmd = &cobra.Command{
	Use:   "publish <slug>",
	Short: "Publish a draft article",
	Long: `Clear the draft flag and stamp publishedAt with today's date when the
article does not carry one yet. The document is re-validated before the
file is rewritten.`,
	Example: `  blogforge article publish my-post`,
	Args:    shared.SlugArgs(config.CollectionArticle),
	RunE:    runPublish,
}

func init() {
	ArticleCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	rt, err := shared.NewRuntime(cmd)
	if err != nil {
		return err
	}
	slug := args[0]

	doc, err := rt.Store.Load(config.CollectionArticle, slug)
	if err != nil {
		if stderrors.Is(err, content.ErrNotFound) {
			return errors.SlugNotFound(config.CollectionArticle, slug)
		}
		return errors.Wrap(err, errors.Runtime)
	}

	doc.Fields["isDraft"] = false
	if date, _ := doc.Fields["publishedAt"].(string); date == "" {
		doc.Fields["publishedAt"] = time.Now().Format("2006-01-02")
	}

	cs, err := rt.SchemaFor(config.CollectionArticle)
	if err != nil {
		return err
	}
	label := shared.RelPath(rt.Root, doc.Path)
	if res := cs.Validate(doc.Fields); !res.Valid {
		shared.PrintValidationResult(rt.Printer, label, res)
		return shared.NewExitError(shared.ExitValidationFailed)
	}
	if err := rt.Store.Save(doc); err != nil {
		return errors.Wrap(err, errors.Runtime)
	}
	rt.Printer.Successf("published %s (publishedAt %s)", label, doc.Fields["publishedAt"])
	return nil
}
