package render

import "github.com/careerpal/careerpal/internal/types"

// buildClassic renders the single-column serif variant: centered header,
// ruled section titles, two-column education/skills block.
func buildClassic(doc *types.ResumeDocument) *Node {
	pi := doc.PersonalInfo
	root := node(KindDocument, string(types.TemplateClassic), "")

	name := pi.FullName
	if name == "" {
		name = "YOUR NAME"
	}
	header := node(KindHeader, "identity", "")
	header.add(node(KindHeading, "name", name))
	header.add(node(KindText, "contact", contactLine(" | ", pi.Email, pi.Phone, pi.Location)))
	header.add(node(KindText, "links", contactLine(" | ", pi.Website, pi.LinkedIn)))
	root.add(header)

	summary := node(KindSection, "summary", "")
	summary.add(node(KindHeading, "section-title", "Professional Summary"))
	summary.add(node(KindText, "summary", pi.Summary))
	root.add(summary)

	experience := node(KindSection, "experience", "")
	experience.add(node(KindHeading, "section-title", "Experience"))
	expList := node(KindList, "entries", "")
	for _, exp := range doc.Experiences {
		entry := node(KindItem, "experience-entry", "")
		entry.add(node(KindHeading, "company", contactLine(", ", exp.Company, exp.Location)))
		entry.add(node(KindBadge, "dates", dateRange(exp)))
		entry.add(node(KindText, "position", exp.Position))
		entry.add(node(KindText, "description", exp.Description))
		expList.add(entry)
	}
	experience.add(expList)
	root.add(experience)

	education := node(KindSection, "education", "")
	education.add(node(KindHeading, "section-title", "Education"))
	eduList := node(KindList, "entries", "")
	for _, edu := range doc.Education {
		entry := node(KindItem, "education-entry", "")
		entry.add(node(KindHeading, "school", edu.School))
		entry.add(node(KindBadge, "dates", edu.GraduationDate))
		entry.add(node(KindText, "degree", contactLine(" in ", edu.Degree, edu.Field)))
		eduList.add(entry)
	}
	education.add(eduList)
	root.add(education)

	if len(doc.Skills) > 0 {
		skills := node(KindSection, "skills", "")
		skills.add(node(KindHeading, "section-title", "Skills & Expertise"))
		names := make([]string, len(doc.Skills))
		for i, skill := range doc.Skills {
			names[i] = skill.Name
		}
		skills.add(node(KindText, "skills", contactLine(", ", names...)))
		root.add(skills)
	}

	if len(doc.Awards) > 0 {
		awards := node(KindSection, "awards", "")
		awards.add(node(KindHeading, "section-title", "Honors & Awards"))
		list := node(KindList, "entries", "")
		for _, award := range doc.Awards {
			list.add(node(KindItem, "award-entry",
				award.Title+" – "+award.Issuer+" ("+award.Date+")"))
		}
		awards.add(list)
		root.add(awards)
	}

	if len(doc.Certifications) > 0 {
		certs := node(KindSection, "certifications", "")
		certs.add(node(KindHeading, "section-title", "Certifications"))
		list := node(KindList, "entries", "")
		for _, cert := range doc.Certifications {
			list.add(node(KindItem, "certification-entry",
				cert.Name+" – "+cert.Issuer+" ("+cert.Date+")"))
		}
		certs.add(list)
		root.add(certs)
	}

	customSections(root, doc.CustomSections, "section-title")
	return root
}
