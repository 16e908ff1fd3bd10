package cli

import (
	stderrors "errors"

	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
	"github.com/lord007tn/BlogForge-sub000/internal/config"
	"github.com/lord007tn/BlogForge-sub000/internal/content"
	"github.com/lord007tn/BlogForge-sub000/internal/errors"
	"github.com/lord007tn/BlogForge-sub000/internal/seo"
)

var seoCmd = &cobra.Command{
	Use:     "seo",
	Short:   "Audit article SEO",
	GroupID: GroupInsights,
}

var seoCheckCmd = &cobra.Command{
	Use:   "check [slug]",
	Short: "Run SEO checks on articles",
	Long: `Check article titles, descriptions, keywords, images, and canonical
URLs against common search guidelines. Findings carry a severity; each
article's score starts at 100 and loses points per finding. The command
is advisory and always exits zero when the corpus is readable.`,
	Example: `  blogforge seo check
  blogforge seo check my-post
  blogforge seo check --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSeoCheck,
}

func init() {
	rootCmd.AddCommand(seoCmd)
	seoCmd.AddCommand(seoCheckCmd)
	seoCheckCmd.Flags().Bool("json", false, "Emit JSON instead of per-article blocks")
}

func runSeoCheck(cmd *cobra.Command, args []string) error {
	jsonOut, _ := cmd.Flags().GetBool("json")

	rt, err := shared.NewRuntime(cmd)
	if err != nil {
		return err
	}

	var reports []*seo.Report
	if len(args) == 1 {
		doc, err := rt.Store.Load(config.CollectionArticle, args[0])
		if err != nil {
			if stderrors.Is(err, content.ErrNotFound) {
				return errors.SlugNotFound(config.CollectionArticle, args[0])
			}
			return errors.Wrap(err, errors.Runtime)
		}
		reports = []*seo.Report{seo.CheckArticle(rt.Config, doc)}
	} else {
		reports, err = seo.CheckAll(cmd.Context(), rt.Config, rt.Store)
		if err != nil {
			return errors.Wrap(err, errors.Runtime)
		}
	}

	if jsonOut {
		return shared.PrintJSON(rt.Printer.Out, reports)
	}
	if len(reports) == 0 {
		rt.Printer.Infof("no articles to check")
		return nil
	}

	for _, report := range reports {
		if problemFree(report) {
			rt.Printer.Successf("%s scores %d", report.Slug, report.Score)
		} else {
			rt.Printer.Failuref("%s scores %d", report.Slug, report.Score)
		}
		for _, finding := range report.Findings {
			rt.Printer.Infof("  [%s] %s: %s", finding.Severity, finding.Check, finding.Message)
		}
	}

	rt.Printer.Infof("")
	rt.Printer.Infof("average score %d across %d article(s)",
		seo.AverageScore(reports), len(reports))
	return nil
}

// problemFree reports whether a report carries only informational findings.
func problemFree(report *seo.Report) bool {
	for _, finding := range report.Findings {
		if finding.Severity != seo.SeverityInfo {
			return false
		}
	}
	return true
}
