package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/careerpal/careerpal/internal/observability"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a summary of the stored resume",
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	doc := st.Get()
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintDocument(doc)
	if cfg.Verbose {
		printer.PrintExperiences(doc.Experiences)
		printer.PrintSkills(doc.Skills)
	}
	return nil
}
