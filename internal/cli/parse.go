package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/presslens/presslens/internal/model"
	"github.com/presslens/presslens/internal/pipeline"
)

var (
	outJSON     string
	outMD       string
	noFooter    bool
	llmEnabled  bool
	llmModel    string
	parseBudget time.Duration
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <file|->",
	Short: "Parse a press release into structured, classified output",
	Long: `Parse analyzes a single press release to:
- Validate the input is parseable text
- Segment headline, dateline, lead, body, and contact block
- Resolve quote attributions, folding continuation quotes
- Extract and classify factual claims
- Score how completely the release could be parsed

Example:
  presslens parse release.txt
  cat release.txt | presslens parse -
  presslens parse release.txt --json report.json --md report.md
  presslens parse release.txt --llm --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	parseCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	parseCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	parseCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summary generation (requires OPENAI_API_KEY)")
	parseCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
	parseCmd.Flags().DurationVar(&parseBudget, "timeout", 2*time.Minute, "overall timeout including the optional LLM call")
}

func runParse(cmd *cobra.Command, args []string) error {
	source := args[0]

	text, err := readInput(source)
	if err != nil {
		return err
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p := pipeline.NewParser(cfg)
	report := p.ParseWithValidation(source, text)

	if llmEnabled && report.Technical.IsParseable {
		ctx, cancel := context.WithTimeout(context.Background(), parseBudget)
		defer cancel()
		p.Summarize(ctx, report)
	}

	return renderOutputs(p, report)
}

// readInput reads a file, or stdin when the argument is "-".
func readInput(source string) (string, error) {
	if source == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}

// buildConfig assembles configuration from defaults and flags.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Provider = "openai"
		cfg.LLM.Model = llmModel
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	return cfg, nil
}

func renderOutputs(p *pipeline.Parser, report *model.Report) error {
	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}
