// Package types provides type definitions for the résumé document edited by CareerPal.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// TemplateID selects a Template Renderer variant.
type TemplateID string

// Supported template variants.
const (
	TemplateModern     TemplateID = "modern"
	TemplateClassic    TemplateID = "classic"
	TemplateMinimalist TemplateID = "minimalist"
)

// SkillLevel is the self-assessed proficiency attached to a skill.
type SkillLevel string

// Skill levels. No ordering is implied beyond display.
const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelExpert       SkillLevel = "Expert"
)

// PersonalInfo holds the identity fields plus the free-text summary.
// All fields are optional and default to empty.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	Summary  string `json:"summary"`
}

// Experience is one entry in the work history. Current=true overrides the
// displayed end date to "Present" regardless of EndDate's value.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education is one entry in the education history.
type Education struct {
	ID             string `json:"id"`
	School         string `json:"school"`
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa,omitempty"`
}

// Skill is a named skill with a level. Duplicate names are permitted.
type Skill struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

// Project is a portfolio project. Present in the schema but has no dedicated
// editor; it persists and feeds skill suggestions.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Link        string `json:"link,omitempty"`
	Description string `json:"description"`
}

// Award is an honor or recognition entry.
type Award struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Issuer      string `json:"issuer"`
	Description string `json:"description"`
}

// Certification is a professional certification entry.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	Link   string `json:"link,omitempty"`
}

// CustomSection is a user- or AI-defined free-form section. Slice order is
// display order.
type CustomSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ResumeDocument is the root aggregate: the single résumé record edited by the
// user. List items carry client-generated ids used only for list-key stability
// and targeted update/delete; there are no cross-entity references.
type ResumeDocument struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Experiences    []Experience    `json:"experiences"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Awards         []Award         `json:"awards"`
	Certifications []Certification `json:"certifications"`
	CustomSections []CustomSection `json:"customSections"`
	TemplateID     TemplateID      `json:"templateId"`
}

// NewID returns a fresh unique id for a list-item entity.
func NewID() string {
	return uuid.NewString()
}

// DefaultDocument returns a fresh document with all fields empty and the
// modern template selected.
func DefaultDocument() *ResumeDocument {
	return &ResumeDocument{
		Experiences:    []Experience{},
		Education:      []Education{},
		Skills:         []Skill{},
		Projects:       []Project{},
		Awards:         []Award{},
		Certifications: []Certification{},
		CustomSections: []CustomSection{},
		TemplateID:     TemplateModern,
	}
}

// Clone returns a deep copy of the document. Editors and the renderer work on
// copies so that no caller can mutate store state in place.
func (d *ResumeDocument) Clone() *ResumeDocument {
	out := *d
	out.Experiences = cloneSlice(d.Experiences)
	out.Education = cloneSlice(d.Education)
	out.Skills = cloneSlice(d.Skills)
	out.Projects = cloneSlice(d.Projects)
	out.Awards = cloneSlice(d.Awards)
	out.Certifications = cloneSlice(d.Certifications)
	out.CustomSections = cloneSlice(d.CustomSections)
	return &out
}

// cloneSlice copies a section list, keeping empty non-nil slices empty so
// they still serialize as [] rather than null.
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// ValidTemplate reports whether id names one of the three shipped templates.
func ValidTemplate(id TemplateID) bool {
	switch id {
	case TemplateModern, TemplateClassic, TemplateMinimalist:
		return true
	}
	return false
}
