package render

import (
	"strings"

	"github.com/careerpal/careerpal/internal/types"
)

// buildModern renders the two-column variant: a dark sidebar with contact,
// skills, education, and certifications, and a main column with profile,
// experience timeline, and honors.
func buildModern(doc *types.ResumeDocument) *Node {
	root := node(KindDocument, string(types.TemplateModern), "")
	root.add(modernSidebar(doc), modernMain(doc))
	return root
}

func modernSidebar(doc *types.ResumeDocument) *Node {
	pi := doc.PersonalInfo
	sidebar := node(KindColumn, "sidebar", "")

	// Name split across two lines, first word emphasized.
	first, rest := splitName(pi.FullName)
	header := node(KindHeader, "identity", "")
	header.add(node(KindHeading, "first-name", first))
	header.add(node(KindHeading, "last-name", rest))
	headline := "Professional"
	if len(doc.Experiences) > 0 && doc.Experiences[0].Position != "" {
		headline = doc.Experiences[0].Position
	}
	header.add(node(KindText, "headline", headline))
	sidebar.add(header)

	contact := node(KindSection, "contact", "")
	contact.add(node(KindHeading, "sidebar-title", "Contact Information"))
	items := node(KindList, "contact-items", "")
	for _, v := range []string{pi.Email, pi.Phone, pi.Location} {
		if v != "" {
			items.add(node(KindItem, "contact-item", v))
		}
	}
	if pi.LinkedIn != "" {
		handle := pi.LinkedIn
		if idx := strings.LastIndex(handle, "/"); idx >= 0 {
			handle = handle[idx+1:]
		}
		items.add(node(KindItem, "contact-item", "/in/"+handle))
	}
	contact.add(items)
	sidebar.add(contact)

	if len(doc.Skills) > 0 {
		skills := node(KindSection, "skills", "")
		skills.add(node(KindHeading, "sidebar-title", "Key Expertise"))
		list := node(KindList, "badges", "")
		for _, skill := range doc.Skills {
			list.add(node(KindBadge, "skill", skill.Name))
		}
		skills.add(list)
		sidebar.add(skills)
	}

	education := node(KindSection, "education", "")
	education.add(node(KindHeading, "sidebar-title", "Academic History"))
	eduList := node(KindList, "entries", "")
	for _, edu := range doc.Education {
		entry := node(KindItem, "education-entry", "")
		entry.add(node(KindText, "degree", edu.Degree))
		entry.add(node(KindText, "school", edu.School))
		entry.add(node(KindText, "date", edu.GraduationDate))
		eduList.add(entry)
	}
	education.add(eduList)
	sidebar.add(education)

	if len(doc.Certifications) > 0 {
		certs := node(KindSection, "certifications", "")
		certs.add(node(KindHeading, "sidebar-title", "Certifications"))
		list := node(KindList, "entries", "")
		for _, cert := range doc.Certifications {
			entry := node(KindItem, "certification-entry", "")
			entry.add(node(KindText, "name", cert.Name))
			entry.add(node(KindText, "issuer", cert.Issuer+" • "+cert.Date))
			list.add(entry)
		}
		certs.add(list)
		sidebar.add(certs)
	}

	return sidebar
}

func modernMain(doc *types.ResumeDocument) *Node {
	main := node(KindColumn, "main", "")

	profile := node(KindSection, "profile", "")
	profile.add(node(KindHeading, "main-title", "Professional Profile"))
	profile.add(node(KindText, "summary", doc.PersonalInfo.Summary))
	main.add(profile)

	experience := node(KindSection, "experience", "")
	experience.add(node(KindHeading, "main-title", "Experience Timeline"))
	list := node(KindList, "entries", "")
	for _, exp := range doc.Experiences {
		entry := node(KindItem, "experience-entry", "")
		entry.add(node(KindHeading, "position", exp.Position))
		entry.add(node(KindBadge, "dates", dateRange(exp)))
		entry.add(node(KindText, "company", contactLine(" • ", exp.Company, exp.Location)))
		entry.add(node(KindText, "description", exp.Description))
		list.add(entry)
	}
	experience.add(list)
	main.add(experience)

	if len(doc.Awards) > 0 {
		awards := node(KindSection, "awards", "")
		awards.add(node(KindHeading, "main-title", "Honors & Recognition"))
		awardList := node(KindList, "entries", "")
		for _, award := range doc.Awards {
			entry := node(KindItem, "award-entry", "")
			entry.add(node(KindHeading, "title", award.Title))
			entry.add(node(KindText, "issuer", award.Issuer+" • "+award.Date))
			awardList.add(entry)
		}
		awards.add(awardList)
		main.add(awards)
	}

	customSections(main, doc.CustomSections, "main-title")
	return main
}

// splitName splits a full name into an emphasized first word and the rest,
// with placeholders when absent.
func splitName(fullName string) (string, string) {
	if fullName == "" {
		return "FIRST", "LAST"
	}
	parts := strings.Fields(fullName)
	if len(parts) == 1 {
		return parts[0], "LAST"
	}
	return parts[0], strings.Join(parts[1:], " ")
}
