package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/presslens/presslens/internal/fetch"
	"github.com/presslens/presslens/internal/ground"
	"github.com/presslens/presslens/internal/pipeline"
	"github.com/presslens/presslens/internal/worker"
)

var (
	sourcesFile   string
	verifyTimeout time.Duration
	verifyJSON    string
	verifyMD      string
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:     "verify <file|->",
	Aliases: []string{"ground"},
	Short:   "Parse a release and ground its claims against provided sources",
	Long: `Verify parses a press release, then checks each extracted claim
against a list of candidate source URLs:
- Sources are fetched politely (robots.txt, per-domain rate limits)
- Each source is scored by credibility tier (.gov > research > news)
- A claim counts as verified only when a credible source's text
  supports it

Every attempt is recorded, including failures. "Unverified" means the
provided sources did not support the claim - not that it is false.

Example:
  presslens verify release.txt --sources sources.txt
  presslens verify release.txt --sources sources.txt --json report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&sourcesFile, "sources", "", "file of candidate source URLs, one per line (required)")
	verifyCmd.Flags().DurationVar(&verifyTimeout, "timeout", 10*time.Minute, "total timeout for parsing and grounding")
	verifyCmd.Flags().StringVar(&verifyJSON, "json", "", "output JSON path (optional)")
	verifyCmd.Flags().StringVar(&verifyMD, "md", "", "output Markdown path (optional)")
	_ = verifyCmd.MarkFlagRequired("sources")
}

func runVerify(cmd *cobra.Command, args []string) error {
	source := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
	defer cancel()

	text, err := readInput(source)
	if err != nil {
		return err
	}

	urls, err := worker.ReadPathsFromFile(sourcesFile)
	if err != nil {
		return fmt.Errorf("read sources: %w", err)
	}
	if len(urls) == 0 {
		return fmt.Errorf("no source URLs in %s", sourcesFile)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p := pipeline.NewParser(cfg)
	report := p.ParseWithValidation(source, text)

	if report.Technical.IsParseable && report.Release != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "Grounding %d claims against %d sources\n", len(report.Release.Claims), len(urls))
		}

		p.GroundClaims(ctx, report, ground.GroundOptions{
			Searcher: fetch.NewListSearcher(urls),
			Fetcher:  fetch.NewClient(cfg.HTTP, cfg.Cache),
		})
	}

	if err := p.RenderReport(report, verifyJSON, verifyMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}
