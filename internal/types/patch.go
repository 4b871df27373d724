package types

// DocumentPatch is a partial document for merge-updates. Each non-nil field
// replaces the corresponding top-level document field wholesale; arrays and
// nested objects are never deep-merged. No validation happens at this layer.
type DocumentPatch struct {
	PersonalInfo   *PersonalInfo    `json:"personalInfo,omitempty"`
	Experiences    *[]Experience    `json:"experiences,omitempty"`
	Education      *[]Education     `json:"education,omitempty"`
	Skills         *[]Skill         `json:"skills,omitempty"`
	Projects       *[]Project       `json:"projects,omitempty"`
	Awards         *[]Award         `json:"awards,omitempty"`
	Certifications *[]Certification `json:"certifications,omitempty"`
	CustomSections *[]CustomSection `json:"customSections,omitempty"`
	TemplateID     *TemplateID      `json:"templateId,omitempty"`
}

// Apply shallow-merges the patch into doc, replacing whole top-level fields.
func (p *DocumentPatch) Apply(doc *ResumeDocument) {
	if p.PersonalInfo != nil {
		doc.PersonalInfo = *p.PersonalInfo
	}
	if p.Experiences != nil {
		doc.Experiences = *p.Experiences
	}
	if p.Education != nil {
		doc.Education = *p.Education
	}
	if p.Skills != nil {
		doc.Skills = *p.Skills
	}
	if p.Projects != nil {
		doc.Projects = *p.Projects
	}
	if p.Awards != nil {
		doc.Awards = *p.Awards
	}
	if p.Certifications != nil {
		doc.Certifications = *p.Certifications
	}
	if p.CustomSections != nil {
		doc.CustomSections = *p.CustomSections
	}
	if p.TemplateID != nil {
		doc.TemplateID = *p.TemplateID
	}
}

// IsZero reports whether the patch carries no replacements.
func (p *DocumentPatch) IsZero() bool {
	return p.PersonalInfo == nil &&
		p.Experiences == nil &&
		p.Education == nil &&
		p.Skills == nil &&
		p.Projects == nil &&
		p.Awards == nil &&
		p.Certifications == nil &&
		p.CustomSections == nil &&
		p.TemplateID == nil
}
