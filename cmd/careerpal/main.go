// Package main provides the entry point for the CareerPal resume editor.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/careerpal/careerpal/internal/ai"
	"github.com/careerpal/careerpal/internal/config"
	"github.com/careerpal/careerpal/internal/editor"
	"github.com/careerpal/careerpal/internal/llm"
	"github.com/careerpal/careerpal/internal/storage"
	"github.com/careerpal/careerpal/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "careerpal",
	Short: "CareerPal resume editor",
	Long:  "CareerPal is a resume editor with AI-assisted content generation, three print templates, and a local document store.",
}

var (
	flagConfig  string
	flagDataDir string
	flagBackend string
	flagVerbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Directory for the local document store")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Persistence backend: file or sqlite")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings merges the config file (if any), CLI flags, and environment
// into one effective configuration. Flags win over the file; the file wins
// over built-in defaults.
func loadSettings() (*config.Config, error) {
	cfg := &config.Config{}
	if flagConfig != "" {
		loaded, err := config.LoadConfig(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := config.Config{
		DataDir: flagDataDir,
		Backend: flagBackend,
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		Verbose: flagVerbose || cfg.Verbose,
	}
	merged := flags.MergeWithDefaults(*cfg)

	defaults := config.Config{
		DataDir: defaultDataDir(),
		Backend: "file",
		Port:    8080,
	}
	merged = merged.MergeWithDefaults(defaults)

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// defaultDataDir places the store under the user config directory, falling
// back to the working directory.
func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".careerpal"
	}
	return filepath.Join(base, "careerpal")
}

// openStore builds the persistence backend and loads the document store.
func openStore(cfg *config.Config) (*store.Store, error) {
	var kv storage.KV
	var err error
	switch cfg.Backend {
	case "sqlite":
		kv, err = storage.NewSQLiteKV(filepath.Join(cfg.DataDir, "careerpal.db"))
	default:
		kv, err = storage.NewFileKV(cfg.DataDir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open storage backend: %w", err)
	}

	policy := store.SavePolicy{Kind: store.WriteThrough}
	if cfg.SavePolicy == "debounced" {
		policy = store.SavePolicy{Kind: store.Debounced, Delay: cfg.SaveDelayDuration()}
	}

	return store.New(storage.NewAdapter(kv, ""), store.WithPolicy(policy)), nil
}

// openEditor wires the AI content service when an API key is configured.
// Without a key the editor still works; AI actions are no-ops.
func openEditor(ctx context.Context, cfg *config.Config, st *store.Store) (*editor.Editor, func(), error) {
	if cfg.APIKey == "" {
		return editor.New(st, nil), func() {}, nil
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	closer := func() { _ = client.Close() }
	return editor.New(st, ai.New(client)), closer, nil
}
