// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/careerpal/careerpal/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs a human-readable summary of the resume document.
func (p *Printer) PrintDocument(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	name := doc.PersonalInfo.FullName
	if name == "" {
		name = "(unnamed)"
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	if doc.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", doc.PersonalInfo.Email))
	}
	sb.WriteString(fmt.Sprintf("Template: %s\n", doc.TemplateID))

	if doc.PersonalInfo.Summary != "" {
		summary := doc.PersonalInfo.Summary
		if len(summary) > 50 {
			summary = summary[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Summary:  %s\n", summary))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Sections: %d experiences, %d education, %d skills\n",
		len(doc.Experiences), len(doc.Education), len(doc.Skills)))
	sb.WriteString(fmt.Sprintf("          %d awards, %d certifications, %d custom\n",
		len(doc.Awards), len(doc.Certifications), len(doc.CustomSections)))

	p.printBox("RESUME DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExperiences outputs the experience entries with truncated descriptions.
func (p *Printer) PrintExperiences(experiences []types.Experience) {
	if len(experiences) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(experiences), maxItemsToShow)
	for i := 0; i < count; i++ {
		exp := experiences[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, exp.Position))
		sb.WriteString(fmt.Sprintf("    %s", exp.Company))
		end := exp.EndDate
		if exp.Current {
			end = "Present"
		}
		if exp.StartDate != "" || end != "" {
			sb.WriteString(fmt.Sprintf(" (%s – %s)", exp.StartDate, end))
		}
		sb.WriteString("\n")
		if exp.Description != "" {
			desc := strings.ReplaceAll(exp.Description, "\n", " ")
			if len(desc) > 50 {
				desc = desc[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", desc))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(experiences) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(experiences)-maxItemsToShow))
	}

	p.printBox("EXPERIENCE", sb.String())
}

// PrintSkills outputs the skill list as a comma-joined line.
func (p *Printer) PrintSkills(skills []types.Skill) {
	if len(skills) == 0 {
		return
	}

	names := make([]string, len(skills))
	for i, skill := range skills {
		names[i] = skill.Name
	}

	p.printBox(fmt.Sprintf("SKILLS (%d)", len(skills)), strings.Join(names, ", "))
}

// PrintSuggestions outputs AI-suggested items before they are applied.
func (p *Printer) PrintSuggestions(title string, items []string) {
	if len(items) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "No suggestions returned")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for _, item := range items {
		if len(item) > 50 {
			item = item[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", item))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}
