package render

import "github.com/careerpal/careerpal/internal/types"

// buildMinimalist renders the spare centered variant: wide-tracked
// uppercase header, experience first, then a two-column block of education/
// certifications and expertise/awards.
func buildMinimalist(doc *types.ResumeDocument) *Node {
	pi := doc.PersonalInfo
	root := node(KindDocument, string(types.TemplateMinimalist), "")

	name := pi.FullName
	if name == "" {
		name = "FULL NAME"
	}
	header := node(KindHeader, "identity", "")
	header.add(node(KindHeading, "name", name))
	header.add(node(KindText, "contact", contactLine("   ", pi.Email, pi.Phone, pi.Location)))
	root.add(header)

	if pi.Summary != "" {
		summary := node(KindSection, "summary", "")
		summary.add(node(KindText, "summary", pi.Summary))
		root.add(summary)
	}

	experience := node(KindSection, "experience", "")
	experience.add(node(KindHeading, "section-title", "Professional Experience"))
	expList := node(KindList, "entries", "")
	for _, exp := range doc.Experiences {
		entry := node(KindItem, "experience-entry", "")
		entry.add(node(KindHeading, "position", exp.Position))
		entry.add(node(KindBadge, "dates", dateRange(exp)))
		entry.add(node(KindText, "company", contactLine(" / ", exp.Company, exp.Location)))
		entry.add(node(KindText, "description", exp.Description))
		expList.add(entry)
	}
	experience.add(expList)
	root.add(experience)

	left := node(KindColumn, "left", "")

	education := node(KindSection, "education", "")
	education.add(node(KindHeading, "section-title", "Education"))
	eduList := node(KindList, "entries", "")
	for _, edu := range doc.Education {
		entry := node(KindItem, "education-entry", "")
		entry.add(node(KindText, "degree", edu.Degree))
		entry.add(node(KindText, "field", edu.Field))
		entry.add(node(KindText, "school", edu.School))
		eduList.add(entry)
	}
	education.add(eduList)
	left.add(education)

	if len(doc.Certifications) > 0 {
		certs := node(KindSection, "certifications", "")
		certs.add(node(KindHeading, "section-title", "Certifications"))
		list := node(KindList, "entries", "")
		for _, cert := range doc.Certifications {
			entry := node(KindItem, "certification-entry", "")
			entry.add(node(KindText, "name", cert.Name))
			entry.add(node(KindText, "issuer", cert.Issuer+" ("+cert.Date+")"))
			list.add(entry)
		}
		certs.add(list)
		left.add(certs)
	}

	right := node(KindColumn, "right", "")

	if len(doc.Skills) > 0 {
		skills := node(KindSection, "skills", "")
		skills.add(node(KindHeading, "section-title", "Expertise"))
		list := node(KindList, "badges", "")
		for _, skill := range doc.Skills {
			list.add(node(KindBadge, "skill", skill.Name))
		}
		skills.add(list)
		right.add(skills)
	}

	if len(doc.Awards) > 0 {
		awards := node(KindSection, "awards", "")
		awards.add(node(KindHeading, "section-title", "Awards"))
		list := node(KindList, "entries", "")
		for _, award := range doc.Awards {
			entry := node(KindItem, "award-entry", "")
			entry.add(node(KindText, "title", award.Title))
			entry.add(node(KindText, "issuer", award.Issuer+" • "+award.Date))
			list.add(entry)
		}
		awards.add(list)
		right.add(awards)
	}

	root.add(left, right)
	customSections(root, doc.CustomSections, "section-title")
	return root
}
