package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-match/internal/config"
	"github.com/jonathan/resume-match/internal/llm"
	"github.com/jonathan/resume-match/internal/observability"
	"github.com/jonathan/resume-match/internal/pipeline"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Long: `Run the full match analysis pipeline: job requirement extraction, candidate
profile extraction, hybrid scoring, and recommendation generation.

Outputs the analysis result as JSON on stdout, or a formatted report with --verbose.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeCVPath  string
	analyzeJobPath string
	analyzeAPIKey  string
	analyzeStream  bool
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCVPath, "cv", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJobPath, "job", "j", "", "Path to job description text file (required)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	analyzeCmd.Flags().BoolVar(&analyzeStream, "stream", false, "Print progress events as newline-delimited JSON")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted report instead of raw JSON")

	_ = analyzeCmd.MarkFlagRequired("cv")
	_ = analyzeCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyzeCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if analyzeAPIKey != "" {
		cfg.GeminiAPIKey = analyzeAPIKey
	}
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	cvText, err := os.ReadFile(analyzeCVPath)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	jobText, err := os.ReadFile(analyzeJobPath)
	if err != nil {
		return fmt.Errorf("failed to read job description file: %w", err)
	}

	client, err := llm.NewClient(ctx, llmConfig(cfg), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	analyzer := pipeline.NewAnalyzer(llm.WithRetry(client, cfg.LLMMaxRetries, cfg.LLMRetryDelay))

	if analyzeStream {
		return streamAnalysis(ctx, analyzer, string(cvText), string(jobText))
	}

	result, err := analyzer.Analyze(ctx, string(cvText), string(jobText))
	if err != nil {
		return fmt.Errorf("analysis failed (stage %s): %w", pipeline.StageOf(err), err)
	}

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintAnalysisResult(result)
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// streamAnalysis prints each pipeline event as one JSON line, the same frames
// the HTTP streaming endpoint emits.
func streamAnalysis(ctx context.Context, analyzer *pipeline.Analyzer, cvText, jobText string) error {
	var failure error
	enc := json.NewEncoder(os.Stdout)

	for event := range analyzer.Stream(ctx, cvText, jobText) {
		if err := enc.Encode(event); err != nil {
			return fmt.Errorf("failed to write event: %w", err)
		}
		if event.Err != nil {
			failure = event.Err
		}
	}

	if failure != nil {
		return fmt.Errorf("analysis failed (stage %s): %w", pipeline.StageOf(failure), failure)
	}
	return nil
}
