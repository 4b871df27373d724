package server

import (
	"encoding/json"
	"net/http"

	"github.com/careerpal/careerpal/internal/types"
)

// fieldRequest is the body of single-field update endpoints.
type fieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// handleGetDocument returns the current document.
func (s *Server) handleGetDocument(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Get())
}

// handlePatchDocument merges a document patch. Top-level keys present in the
// body replace the whole field; absent keys are untouched.
func (s *Server) handlePatchDocument(w http.ResponseWriter, r *http.Request) {
	var patch types.DocumentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid patch body: "+err.Error())
		return
	}
	s.store.Update(&patch)
	s.jsonResponse(w, http.StatusOK, s.store.Get())
}

// handleSelectTemplate switches the active template.
func (s *Server) handleSelectTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TemplateID types.TemplateID `json:"templateId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if !types.ValidTemplate(req.TemplateID) {
		s.errorResponse(w, http.StatusBadRequest, "unknown template id: "+string(req.TemplateID))
		return
	}
	s.editor.SelectTemplate(req.TemplateID)
	s.jsonResponse(w, http.StatusOK, map[string]types.TemplateID{"templateId": req.TemplateID})
}

// handlePersonalInfo updates one identity field.
func (s *Server) handlePersonalInfo(w http.ResponseWriter, r *http.Request) {
	var req fieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Field == "" {
		s.errorResponse(w, http.StatusBadRequest, "field is required")
		return
	}
	s.editor.UpdatePersonalInfo(req.Field, req.Value)
	s.jsonResponse(w, http.StatusOK, s.store.Get().PersonalInfo)
}

// handleAddSection appends an entry to the named section. Skills require a
// non-empty name; custom sections take a title.
func (s *Server) handleAddSection(w http.ResponseWriter, r *http.Request) {
	section := r.PathValue("section")

	var req struct {
		Name  string `json:"name,omitempty"`
		Title string `json:"title,omitempty"`
	}
	if r.Body != nil {
		// Body is optional for sections that start empty.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	var id string
	switch section {
	case "experiences":
		id = s.editor.AddExperience()
	case "education":
		id = s.editor.AddEducation()
	case "skills":
		id = s.editor.AddSkill(req.Name)
		if id == "" {
			s.errorResponse(w, http.StatusBadRequest, "skill name is required")
			return
		}
	case "awards":
		id = s.editor.AddAward()
	case "certifications":
		id = s.editor.AddCertification()
	case "custom":
		id = s.editor.AddCustomSection(req.Title)
	default:
		s.errorResponse(w, http.StatusNotFound, "unknown section: "+section)
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id})
}

// handleUpdateSection replaces one field of one entry.
func (s *Server) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	section := r.PathValue("section")
	id := r.PathValue("id")

	var req fieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Field == "" {
		s.errorResponse(w, http.StatusBadRequest, "field is required")
		return
	}

	switch section {
	case "experiences":
		s.editor.UpdateExperienceField(id, req.Field, req.Value)
	case "education":
		s.editor.UpdateEducationField(id, req.Field, req.Value)
	case "skills":
		s.editor.UpdateSkillField(id, req.Field, req.Value)
	case "awards":
		s.editor.UpdateAwardField(id, req.Field, req.Value)
	case "certifications":
		s.editor.UpdateCertificationField(id, req.Field, req.Value)
	case "custom":
		s.editor.UpdateCustomSectionField(id, req.Field, req.Value)
	default:
		s.errorResponse(w, http.StatusNotFound, "unknown section: "+section)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.store.Get())
}

// handleRemoveSection filters out one entry by id. Removing an id that does
// not exist is not an error.
func (s *Server) handleRemoveSection(w http.ResponseWriter, r *http.Request) {
	section := r.PathValue("section")
	id := r.PathValue("id")

	switch section {
	case "experiences":
		s.editor.RemoveExperience(id)
	case "education":
		s.editor.RemoveEducation(id)
	case "skills":
		s.editor.RemoveSkill(id)
	case "awards":
		s.editor.RemoveAward(id)
	case "certifications":
		s.editor.RemoveCertification(id)
	case "custom":
		s.editor.RemoveCustomSection(id)
	default:
		s.errorResponse(w, http.StatusNotFound, "unknown section: "+section)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.store.Get())
}
