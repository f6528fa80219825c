package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-match/internal/config"
	"github.com/jonathan/resume-match/internal/db"
	"github.com/jonathan/resume-match/internal/llm"
	"github.com/jonathan/resume-match/internal/pipeline"
	"github.com/jonathan/resume-match/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for running match analyses.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := llm.NewClient(ctx, llmConfig(cfg), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	analyzer := pipeline.NewAnalyzer(llm.WithRetry(client, cfg.LLMMaxRetries, cfg.LLMRetryDelay))

	// Persistence is optional; without DATABASE_URL the server still
	// serves analyses, it just cannot store or list them.
	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.Migrate(ctx); err != nil {
			database.Close()
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	} else {
		log.Printf("DATABASE_URL not set; running without persistence")
	}

	srv := server.New(server.Config{Port: cfg.Port}, analyzer, database)
	return srv.Start()
}
