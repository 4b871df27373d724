package server

import (
	"log"
	"net/http"

	"github.com/careerpal/careerpal/internal/export"
	"github.com/careerpal/careerpal/internal/render"
	"github.com/careerpal/careerpal/internal/types"
)

// templateFor resolves the template query parameter, defaulting to the
// document's own selection.
func (s *Server) templateFor(r *http.Request, doc *types.ResumeDocument) types.TemplateID {
	if q := r.URL.Query().Get("template"); q != "" {
		return types.TemplateID(q)
	}
	return doc.TemplateID
}

// handleRenderTree returns the presentation tree as JSON.
func (s *Server) handleRenderTree(w http.ResponseWriter, r *http.Request) {
	doc := s.store.Get()
	tree := render.Render(doc, s.templateFor(r, doc))
	s.jsonResponse(w, http.StatusOK, tree)
}

// handleRenderHTML returns the realized printable page.
func (s *Server) handleRenderHTML(w http.ResponseWriter, r *http.Request) {
	doc := s.store.Get()
	tree := render.Render(doc, s.templateFor(r, doc))
	page, err := render.HTML(tree, doc.PersonalInfo.FullName)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to render page: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(page)); err != nil {
		log.Printf("Error writing HTML response: %v", err)
	}
}

// handleExportPDF prints the rendered page to PDF.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	doc := s.store.Get()
	tree := render.Render(doc, s.templateFor(r, doc))
	page, err := render.HTML(tree, doc.PersonalInfo.FullName)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to render page: "+err.Error())
		return
	}

	pdf, err := export.PDF(r.Context(), page)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to export PDF: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}
