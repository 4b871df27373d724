package ai

import (
	"fmt"
	"strings"

	"github.com/careerpal/careerpal/internal/types"
)

// ResumeText flattens a document into the plain-text form embedded in the
// tailor prompt. Empty sections are skipped.
func ResumeText(doc *types.ResumeDocument) string {
	var sb strings.Builder

	pi := doc.PersonalInfo
	if pi.FullName != "" {
		sb.WriteString(pi.FullName + "\n")
	}
	if pi.Summary != "" {
		sb.WriteString("Summary: " + pi.Summary + "\n")
	}

	if len(doc.Experiences) > 0 {
		sb.WriteString("\nExperience:\n")
		for _, exp := range doc.Experiences {
			end := exp.EndDate
			if exp.Current {
				end = "Present"
			}
			sb.WriteString(fmt.Sprintf("- %s at %s (%s - %s): %s\n",
				exp.Position, exp.Company, exp.StartDate, end, exp.Description))
		}
	}

	if len(doc.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		for _, edu := range doc.Education {
			sb.WriteString(fmt.Sprintf("- %s in %s, %s (%s)\n",
				edu.Degree, edu.Field, edu.School, edu.GraduationDate))
		}
	}

	if len(doc.Skills) > 0 {
		names := make([]string, len(doc.Skills))
		for i, skill := range doc.Skills {
			names[i] = skill.Name
		}
		sb.WriteString("\nSkills: " + strings.Join(names, ", ") + "\n")
	}

	if len(doc.Projects) > 0 {
		sb.WriteString("\nProjects:\n")
		for _, p := range doc.Projects {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", p.Title, p.Description))
		}
	}

	for _, cs := range doc.CustomSections {
		sb.WriteString("\n" + cs.Title + ":\n" + cs.Content + "\n")
	}

	return strings.TrimSpace(sb.String())
}
