// Package server provides the HTTP REST API for the resume editor.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/careerpal/careerpal/internal/editor"
	"github.com/careerpal/careerpal/internal/store"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      *store.Store
	editor     *editor.Editor
	useBrowser bool
}

// Config holds server configuration
type Config struct {
	Port       int
	UseBrowser bool
}

// New creates a new server instance over an already-initialized store and
// editor. The caller owns the store's lifetime; Start closes it on shutdown.
func New(cfg Config, st *store.Store, ed *editor.Editor) *Server {
	s := &Server{
		store:      st,
		editor:     ed,
		useBrowser: cfg.UseBrowser,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Document endpoints
	mux.HandleFunc("GET /document", s.handleGetDocument)
	mux.HandleFunc("PATCH /document", s.handlePatchDocument)
	mux.HandleFunc("PUT /document/template", s.handleSelectTemplate)
	mux.HandleFunc("POST /personal-info", s.handlePersonalInfo)

	// Section editors
	mux.HandleFunc("POST /sections/{section}", s.handleAddSection)
	mux.HandleFunc("PATCH /sections/{section}/{id}", s.handleUpdateSection)
	mux.HandleFunc("DELETE /sections/{section}/{id}", s.handleRemoveSection)

	// AI actions
	mux.HandleFunc("POST /ai/optimize-summary", s.handlePolishSummary)
	mux.HandleFunc("POST /ai/bullet-points/{id}", s.handleRewriteExperience)
	mux.HandleFunc("POST /ai/suggest-skills", s.handleSuggestSkills)
	mux.HandleFunc("POST /ai/tailor", s.handleTailor)
	mux.HandleFunc("POST /ai/fresher-preset", s.handleFresherPreset)
	mux.HandleFunc("POST /ai/suggest-sections", s.handleSuggestSections)
	mux.HandleFunc("GET /ai/busy", s.handleBusy)

	// Rendering and export
	mux.HandleFunc("GET /render", s.handleRenderHTML)
	mux.HandleFunc("GET /render/tree", s.handleRenderTree)
	mux.HandleFunc("GET /export.pdf", s.handleExportPDF)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for AI calls and PDF export
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the configured route tree, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := s.store.Close(); err != nil {
		log.Printf("Error closing store: %v", err)
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
