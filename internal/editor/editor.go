// Package editor provides the section editors: typed add / update-field /
// remove operations scoped to one document collection each, plus the
// AI-backed actions. Every mutation goes through the Document Store's merge
// operation with a freshly built copy of the affected section; nothing is
// mutated in place.
package editor

import (
	"strings"

	"github.com/careerpal/careerpal/internal/ai"
	"github.com/careerpal/careerpal/internal/store"
	"github.com/careerpal/careerpal/internal/types"
)

// maxSkills caps the skill list after AI suggestions are appended.
const maxSkills = 15

// Editor mutates the document store, one section at a time.
type Editor struct {
	store *store.Store
	ai    *ai.Service
	busy  *Busy
}

// New creates an editor over the store. The AI service may be nil; AI-backed
// actions then no-op.
func New(s *store.Store, svc *ai.Service) *Editor {
	return &Editor{store: s, ai: svc, busy: NewBusy()}
}

// Busy exposes the pending-call tracker for indicator rendering.
func (e *Editor) Busy() *Busy {
	return e.busy
}

// UpdatePersonalInfo replaces one identity field. Unknown field names are a
// silent no-op; all fields are free text with no format validation.
func (e *Editor) UpdatePersonalInfo(field, value string) {
	doc := e.store.Get()
	pi := doc.PersonalInfo
	switch field {
	case "fullName":
		pi.FullName = value
	case "email":
		pi.Email = value
	case "phone":
		pi.Phone = value
	case "location":
		pi.Location = value
	case "website":
		pi.Website = value
	case "linkedin":
		pi.LinkedIn = value
	case "summary":
		pi.Summary = value
	default:
		return
	}
	e.store.Update(&types.DocumentPatch{PersonalInfo: &pi})
}

// SelectTemplate switches the active template. Unknown ids are ignored.
func (e *Editor) SelectTemplate(id types.TemplateID) {
	if !types.ValidTemplate(id) {
		return
	}
	e.store.Update(&types.DocumentPatch{TemplateID: &id})
}

// AddExperience appends an empty experience entry and returns its id.
func (e *Editor) AddExperience() string {
	doc := e.store.Get()
	exp := types.Experience{ID: types.NewID()}
	next := append(doc.Experiences, exp)
	e.store.Update(&types.DocumentPatch{Experiences: &next})
	return exp.ID
}

// UpdateExperienceField replaces one field of the experience with the given
// id. The "when" field is the original combined date-range control: it
// splits on a literal " - " into start and end, which is lossy if either
// value contains that substring. Prefer startDate/endDate.
func (e *Editor) UpdateExperienceField(id, field, value string) {
	doc := e.store.Get()
	next := append([]types.Experience(nil), doc.Experiences...)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		switch field {
		case "company":
			next[i].Company = value
		case "position":
			next[i].Position = value
		case "location":
			next[i].Location = value
		case "startDate":
			next[i].StartDate = value
		case "endDate":
			next[i].EndDate = value
		case "current":
			next[i].Current = value == "true"
		case "description":
			next[i].Description = value
		case "when":
			start, end := splitDateRange(value)
			next[i].StartDate = start
			next[i].EndDate = end
		default:
			return
		}
		e.store.Update(&types.DocumentPatch{Experiences: &next})
		return
	}
}

// RemoveExperience filters out the experience with the given id.
func (e *Editor) RemoveExperience(id string) {
	doc := e.store.Get()
	next := make([]types.Experience, 0, len(doc.Experiences))
	for _, exp := range doc.Experiences {
		if exp.ID != id {
			next = append(next, exp)
		}
	}
	e.store.Update(&types.DocumentPatch{Experiences: &next})
}

// AddEducation appends an empty education entry and returns its id.
func (e *Editor) AddEducation() string {
	doc := e.store.Get()
	edu := types.Education{ID: types.NewID()}
	next := append(doc.Education, edu)
	e.store.Update(&types.DocumentPatch{Education: &next})
	return edu.ID
}

// UpdateEducationField replaces one field of the education entry with the
// given id.
func (e *Editor) UpdateEducationField(id, field, value string) {
	doc := e.store.Get()
	next := append([]types.Education(nil), doc.Education...)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		switch field {
		case "school":
			next[i].School = value
		case "degree":
			next[i].Degree = value
		case "field":
			next[i].Field = value
		case "graduationDate":
			next[i].GraduationDate = value
		case "gpa":
			next[i].GPA = value
		default:
			return
		}
		e.store.Update(&types.DocumentPatch{Education: &next})
		return
	}
}

// RemoveEducation filters out the education entry with the given id.
func (e *Editor) RemoveEducation(id string) {
	doc := e.store.Get()
	next := make([]types.Education, 0, len(doc.Education))
	for _, edu := range doc.Education {
		if edu.ID != id {
			next = append(next, edu)
		}
	}
	e.store.Update(&types.DocumentPatch{Education: &next})
}

// AddSkill inserts a skill only if the name is non-empty. Duplicate names
// are permitted; no case-insensitive dedup. Returns the new id, or "" when
// nothing was inserted.
func (e *Editor) AddSkill(name string) string {
	if name == "" {
		return ""
	}
	doc := e.store.Get()
	skill := types.Skill{ID: types.NewID(), Name: name, Level: types.LevelExpert}
	next := append(doc.Skills, skill)
	e.store.Update(&types.DocumentPatch{Skills: &next})
	return skill.ID
}

// UpdateSkillField replaces one field of the skill with the given id.
func (e *Editor) UpdateSkillField(id, field, value string) {
	doc := e.store.Get()
	next := append([]types.Skill(nil), doc.Skills...)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		switch field {
		case "name":
			next[i].Name = value
		case "level":
			next[i].Level = types.SkillLevel(value)
		default:
			return
		}
		e.store.Update(&types.DocumentPatch{Skills: &next})
		return
	}
}

// RemoveSkill filters out the skill with the given id.
func (e *Editor) RemoveSkill(id string) {
	doc := e.store.Get()
	next := make([]types.Skill, 0, len(doc.Skills))
	for _, skill := range doc.Skills {
		if skill.ID != id {
			next = append(next, skill)
		}
	}
	e.store.Update(&types.DocumentPatch{Skills: &next})
}

// AddAward appends an empty award entry and returns its id.
func (e *Editor) AddAward() string {
	doc := e.store.Get()
	award := types.Award{ID: types.NewID()}
	next := append(doc.Awards, award)
	e.store.Update(&types.DocumentPatch{Awards: &next})
	return award.ID
}

// UpdateAwardField replaces one field of the award with the given id.
func (e *Editor) UpdateAwardField(id, field, value string) {
	doc := e.store.Get()
	next := append([]types.Award(nil), doc.Awards...)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		switch field {
		case "title":
			next[i].Title = value
		case "date":
			next[i].Date = value
		case "issuer":
			next[i].Issuer = value
		case "description":
			next[i].Description = value
		default:
			return
		}
		e.store.Update(&types.DocumentPatch{Awards: &next})
		return
	}
}

// RemoveAward filters out the award with the given id.
func (e *Editor) RemoveAward(id string) {
	doc := e.store.Get()
	next := make([]types.Award, 0, len(doc.Awards))
	for _, award := range doc.Awards {
		if award.ID != id {
			next = append(next, award)
		}
	}
	e.store.Update(&types.DocumentPatch{Awards: &next})
}

// AddCertification appends an empty certification entry and returns its id.
func (e *Editor) AddCertification() string {
	doc := e.store.Get()
	cert := types.Certification{ID: types.NewID()}
	next := append(doc.Certifications, cert)
	e.store.Update(&types.DocumentPatch{Certifications: &next})
	return cert.ID
}

// UpdateCertificationField replaces one field of the certification with the
// given id.
func (e *Editor) UpdateCertificationField(id, field, value string) {
	doc := e.store.Get()
	next := append([]types.Certification(nil), doc.Certifications...)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		switch field {
		case "name":
			next[i].Name = value
		case "issuer":
			next[i].Issuer = value
		case "date":
			next[i].Date = value
		case "link":
			next[i].Link = value
		default:
			return
		}
		e.store.Update(&types.DocumentPatch{Certifications: &next})
		return
	}
}

// RemoveCertification filters out the certification with the given id.
func (e *Editor) RemoveCertification(id string) {
	doc := e.store.Get()
	next := make([]types.Certification, 0, len(doc.Certifications))
	for _, cert := range doc.Certifications {
		if cert.ID != id {
			next = append(next, cert)
		}
	}
	e.store.Update(&types.DocumentPatch{Certifications: &next})
}

// AddCustomSection appends a custom section with the given title and returns
// its id. Slice order is display order.
func (e *Editor) AddCustomSection(title string) string {
	doc := e.store.Get()
	cs := types.CustomSection{ID: types.NewID(), Title: title}
	next := append(doc.CustomSections, cs)
	e.store.Update(&types.DocumentPatch{CustomSections: &next})
	return cs.ID
}

// UpdateCustomSectionField replaces one field of the custom section with the
// given id.
func (e *Editor) UpdateCustomSectionField(id, field, value string) {
	doc := e.store.Get()
	next := append([]types.CustomSection(nil), doc.CustomSections...)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		switch field {
		case "title":
			next[i].Title = value
		case "content":
			next[i].Content = value
		default:
			return
		}
		e.store.Update(&types.DocumentPatch{CustomSections: &next})
		return
	}
}

// RemoveCustomSection filters out the custom section with the given id.
func (e *Editor) RemoveCustomSection(id string) {
	doc := e.store.Get()
	next := make([]types.CustomSection, 0, len(doc.CustomSections))
	for _, cs := range doc.CustomSections {
		if cs.ID != id {
			next = append(next, cs)
		}
	}
	e.store.Update(&types.DocumentPatch{CustomSections: &next})
}

// splitDateRange splits a combined "start - end" control value on the
// literal " - " separator. Lossy when either side contains the separator.
func splitDateRange(value string) (string, string) {
	parts := strings.SplitN(value, " - ", 2)
	start := parts[0]
	end := ""
	if len(parts) > 1 {
		end = parts[1]
	}
	return start, end
}
