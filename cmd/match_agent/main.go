// Package main provides the entry point for the Resume Match Analyzer CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-match/internal/config"
	"github.com/jonathan/resume-match/internal/llm"
)

var rootCmd = &cobra.Command{
	Use:   "match_agent",
	Short: "Resume Match Analyzer",
	Long:  "Resume Match Analyzer scores a resume against a job description using LLM extraction, deterministic scoring, and semantic validation, and produces actionable improvement recommendations.",
}

// llmConfig returns the model configuration with any per-tier overrides from
// the environment applied.
func llmConfig(cfg *config.Config) *llm.Config {
	modelConfig := llm.DefaultGeminiConfig()
	if cfg.ModelLite != "" {
		modelConfig = modelConfig.WithModel(llm.TierLite, cfg.ModelLite)
	}
	if cfg.ModelStandard != "" {
		modelConfig = modelConfig.WithModel(llm.TierStandard, cfg.ModelStandard)
	}
	if cfg.ModelAdvanced != "" {
		modelConfig = modelConfig.WithModel(llm.TierAdvanced, cfg.ModelAdvanced)
	}
	return modelConfig
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
