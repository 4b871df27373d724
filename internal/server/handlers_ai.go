package server

import (
	"encoding/json"
	"net/http"

	"github.com/careerpal/careerpal/internal/jobfetch"
)

// AI action handlers. Each runs its content-service call synchronously and
// responds with the updated document. Overlapping requests against the same
// field run as independent calls; last write by completion order wins.

// handlePolishSummary rewrites the professional summary.
func (s *Server) handlePolishSummary(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Industry string `json:"industry,omitempty"`
		Level    string `json:"level,omitempty"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	s.editor.PolishSummary(r.Context(), req.Industry, req.Level)
	s.jsonResponse(w, http.StatusOK, s.store.Get())
}

// handleRewriteExperience regenerates one experience's description as bullet
// points.
func (s *Server) handleRewriteExperience(w http.ResponseWriter, r *http.Request) {
	s.editor.RewriteExperience(r.Context(), r.PathValue("id"))
	s.jsonResponse(w, http.StatusOK, s.store.Get())
}

// handleSuggestSkills appends suggested skills to the document.
func (s *Server) handleSuggestSkills(w http.ResponseWriter, r *http.Request) {
	s.editor.SuggestSkills(r.Context())
	s.jsonResponse(w, http.StatusOK, s.store.Get().Skills)
}

// handleTailor rewrites the document against a job description. The posting
// may be given inline or as a URL to fetch.
func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		JobDescription string `json:"jobDescription,omitempty"`
		JobURL         string `json:"jobUrl,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	description := req.JobDescription
	if description == "" && req.JobURL != "" {
		text, err := jobfetch.PostingText(r.Context(), req.JobURL, s.useBrowser)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "failed to fetch job posting: "+err.Error())
			return
		}
		description = text
	}
	if description == "" {
		s.errorResponse(w, http.StatusBadRequest, "jobDescription or jobUrl is required")
		return
	}

	s.editor.Tailor(r.Context(), description)
	s.jsonResponse(w, http.StatusOK, s.store.Get())
}

// handleFresherPreset fills the document from a starter fragment for a
// career domain.
func (s *Server) handleFresherPreset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Domain string `json:"domain"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Domain == "" {
		s.errorResponse(w, http.StatusBadRequest, "domain is required")
		return
	}

	s.editor.ApplyFresherPreset(r.Context(), req.Domain)
	s.jsonResponse(w, http.StatusOK, s.store.Get())
}

// handleSuggestSections returns suggested custom-section titles without
// mutating the document.
func (s *Server) handleSuggestSections(w http.ResponseWriter, r *http.Request) {
	titles := s.editor.SuggestSectionTitles(r.Context())
	if titles == nil {
		titles = []string{}
	}
	s.jsonResponse(w, http.StatusOK, map[string][]string{"titles": titles})
}

// handleBusy lists the busy tokens currently held by pending AI calls.
func (s *Server) handleBusy(w http.ResponseWriter, _ *http.Request) {
	tokens := s.editor.Busy().Tokens()
	if tokens == nil {
		tokens = []string{}
	}
	s.jsonResponse(w, http.StatusOK, map[string][]string{"busy": tokens})
}
