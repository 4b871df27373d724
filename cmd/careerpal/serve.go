package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/careerpal/careerpal/internal/server"
)

var (
	servePort    int
	serveBrowser bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for editing, rendering, and exporting the resume.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().BoolVar(&serveBrowser, "use-browser", false, "Use a headless browser to fetch SPA job postings")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	ed, closeEditor, err := openEditor(context.Background(), cfg, st)
	if err != nil {
		_ = st.Close()
		return fmt.Errorf("failed to create editor: %w", err)
	}
	defer closeEditor()

	srv := server.New(server.Config{
		Port:       cfg.Port,
		UseBrowser: serveBrowser || cfg.UseBrowser,
	}, st, ed)

	return srv.Start()
}
