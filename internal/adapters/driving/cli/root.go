// Package cli implements the mediq command-line interface.
package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/mediq-labs/mediq-cli/internal/adapters/driven/config/file"
	openaillm "github.com/mediq-labs/mediq-cli/internal/adapters/driven/llm/openai"
	"github.com/mediq-labs/mediq-cli/internal/adapters/driven/storage/sqlite"
	"github.com/mediq-labs/mediq-cli/internal/core/ports/driven"
	"github.com/mediq-labs/mediq-cli/internal/core/ports/driving"
	"github.com/mediq-labs/mediq-cli/internal/core/services"
	"github.com/mediq-labs/mediq-cli/internal/extractors"
	"github.com/mediq-labs/mediq-cli/internal/logger"
)

const version = "0.1.0"

var (
	verboseFlag bool
	configDir   string

	cfg   *file.Config
	store *sqlite.Store

	queryService  driving.QueryService
	ingestService driving.IngestService
	recordService driving.RecordService
)

var rootCmd = &cobra.Command{
	Use:   "mediq",
	Short: "Ask questions about stored medical records",
	Long: `mediq ingests medical-record documents (one record per patient) and
answers natural-language questions about them, grounding every answer in
the record text it discloses back as evidence.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print pipeline debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.mediq)")
}

// Execute runs the CLI and releases resources on exit.
func Execute() error {
	defer teardown()
	return rootCmd.Execute()
}

// setup loads configuration and wires the services before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	var err error
	cfg, err = file.Load(configDir)
	if err != nil {
		return err
	}

	store, err = sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open record store: %w", err)
	}

	promptDir := ""
	if configDir != "" {
		promptDir = filepath.Join(configDir, "prompts")
	}
	prompts, err := file.NewPromptStore(promptDir)
	if err != nil {
		return err
	}

	var llm driven.LLMService
	if cfg.LLM.APIKey != "" {
		llm, err = openaillm.New(openaillm.Config{
			APIKey:            cfg.LLM.APIKey,
			BaseURL:           cfg.LLM.BaseURL,
			Model:             cfg.LLM.Model,
			Timeout:           time.Duration(cfg.LLM.TimeoutSeconds) * time.Second,
			MaxAttempts:       cfg.LLM.MaxAttempts,
			RequestsPerMinute: cfg.LLM.RequestsPerMinute,
		})
		if err != nil {
			return err
		}
	} else {
		logger.Warn("No API key configured; ask will be unavailable")
	}

	queryService = services.NewQueryService(store, llm, prompts, cfg.MaxContextBytes, driven.ChatOptions{
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})
	ingestService = services.NewIngestService(store, extractors.Defaults())
	recordService = services.NewRecordService(store)

	return nil
}

// llmConfigured reports whether a generation endpoint is available.
func llmConfigured() bool {
	return cfg != nil && cfg.LLM.APIKey != ""
}

func teardown() {
	if store != nil {
		store.Close()
	}
}
