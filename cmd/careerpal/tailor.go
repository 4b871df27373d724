package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/careerpal/careerpal/internal/jobfetch"
	"github.com/careerpal/careerpal/internal/observability"
)

var (
	tailorJob     string
	tailorJobURL  string
	tailorBrowser bool
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Rewrite the stored resume against a job posting",
	Long:  `Fetch or read a job posting, rewrite the stored resume against it, and persist the result. Requires GEMINI_API_KEY.`,
	RunE:  runTailor,
}

func init() {
	tailorCmd.Flags().StringVar(&tailorJob, "job", "", "Path to a job posting text file")
	tailorCmd.Flags().StringVar(&tailorJobURL, "job-url", "", "URL to fetch the job posting from")
	tailorCmd.Flags().BoolVar(&tailorBrowser, "use-browser", false, "Use a headless browser for SPA job boards")
	rootCmd.AddCommand(tailorCmd)
}

func runTailor(_ *cobra.Command, _ []string) error {
	if tailorJob == "" && tailorJobURL == "" {
		return fmt.Errorf("one of --job or --job-url is required")
	}
	if tailorJob != "" && tailorJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx := context.Background()

	var description string
	if tailorJob != "" {
		data, err := os.ReadFile(tailorJob)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		description = string(data)
	} else {
		description, err = jobfetch.PostingText(ctx, tailorJobURL, tailorBrowser || cfg.UseBrowser)
		if err != nil {
			return err
		}
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	ed, closeEditor, err := openEditor(ctx, cfg, st)
	if err != nil {
		return err
	}
	defer closeEditor()

	ed.Tailor(ctx, description)

	doc := st.Get()
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintDocument(doc)
	if cfg.Verbose {
		printer.PrintExperiences(doc.Experiences)
		printer.PrintSkills(doc.Skills)
	}
	return nil
}
