package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/presslens/presslens/internal/model"
)

// FileParser parses one press-release file into a report.
type FileParser interface {
	ParseWithValidation(source, text string) *model.Report
}

// ParseJob parses a single file.
type ParseJob struct {
	Path   string
	Parser FileParser
}

// Execute reads and parses the file.
func (j *ParseJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &ParseResult{Path: j.Path, Error: err}
	}

	data, err := os.ReadFile(j.Path)
	if err != nil {
		return &ParseResult{Path: j.Path, Error: fmt.Errorf("read file: %w", err)}
	}

	return &ParseResult{
		Path:   j.Path,
		Report: j.Parser.ParseWithValidation(j.Path, string(data)),
	}
}

// ParseResult is the outcome of parsing one file.
type ParseResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the job error, if any.
func (r *ParseResult) GetError() error {
	return r.Error
}

// BatchProcessor parses many release files concurrently.
type BatchProcessor struct {
	parser      FileParser
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(parser FileParser, concurrency int) *BatchProcessor {
	return &BatchProcessor{parser: parser, concurrency: concurrency}
}

// ProcessPaths parses the given files concurrently. Results come back in
// completion order, one per input path.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*ParseResult {
	if len(paths) == 0 {
		return []*ParseResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&ParseJob{Path: path, Parser: b.parser})
	}

	results := pool.Wait()

	parseResults := make([]*ParseResult, len(results))
	for i, result := range results {
		parseResults[i] = result.(*ParseResult)
	}
	return parseResults
}

// ProcessManifest reads file paths from a manifest and parses them.
func (b *BatchProcessor) ProcessManifest(ctx context.Context, manifestPath string) ([]*ParseResult, error) {
	paths, err := ReadPathsFromFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads file paths from a manifest, one per line.
// Blank lines and # comments are skipped; duplicates are dropped.
func ReadPathsFromFile(manifestPath string) ([]string, error) {
	file, err := os.Open(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan manifest: %w", err)
	}
	return paths, nil
}
