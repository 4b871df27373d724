package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/careerpal/careerpal/internal/export"
	"github.com/careerpal/careerpal/internal/render"
	"github.com/careerpal/careerpal/internal/types"
)

var (
	exportOut      string
	exportTemplate string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the resume as PDF or HTML",
	Long:  `Render the stored resume with the selected template and write it as a PDF (or HTML when the output path ends in .html).`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "resume.pdf", "Output file path")
	exportCmd.Flags().StringVar(&exportTemplate, "template", "", "Template override: modern, classic, or minimalist")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
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
	templateID := doc.TemplateID
	if exportTemplate != "" {
		templateID = types.TemplateID(exportTemplate)
		if !types.ValidTemplate(templateID) {
			return fmt.Errorf("unknown template %q", exportTemplate)
		}
	}

	tree := render.Render(doc, templateID)
	page, err := render.HTML(tree, doc.PersonalInfo.FullName)
	if err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	if strings.HasSuffix(exportOut, ".html") {
		if err := os.WriteFile(exportOut, []byte(page), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOut, err)
		}
		fmt.Printf("Wrote %s\n", exportOut)
		return nil
	}

	pdf, err := export.PDF(context.Background(), page)
	if err != nil {
		return err
	}
	if err := os.WriteFile(exportOut, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOut, err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", exportOut, len(pdf))
	return nil
}
