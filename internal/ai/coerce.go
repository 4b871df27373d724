package ai

import (
	"github.com/go-playground/validator/v10"

	"github.com/careerpal/careerpal/internal/types"
)

// validate checks coerced fragment items before they can reach the store.
var validate = validator.New()

// Raw reply shapes. These deliberately mirror only the fields we accept;
// anything else in the reply is dropped by the decoder.

type rawExperience struct {
	Company     string `json:"company" validate:"required_without=Position"`
	Position    string `json:"position" validate:"required_without=Company"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type rawSkill struct {
	Name  string `json:"name" validate:"required"`
	Level string `json:"level"`
}

type rawEducation struct {
	School         string `json:"school" validate:"required"`
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa"`
}

type rawCustomSection struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

type rawFragment struct {
	Summary        string             `json:"summary"`
	Experiences    []rawExperience    `json:"experiences"`
	Skills         []rawSkill         `json:"skills"`
	Education      []rawEducation     `json:"education"`
	CustomSections []rawCustomSection `json:"customSections"`
}

// Fragment is a coerced partial document produced by a structured AI
// operation. Every list item carries a fresh local id: the external service
// cannot know the internal id scheme, and reusing ids from a previous
// document state would silently alias unrelated entries.
type Fragment struct {
	Summary        string
	Experiences    []types.Experience
	Skills         []types.Skill
	Education      []types.Education
	CustomSections []types.CustomSection
}

// IsZero reports whether the fragment carries nothing.
func (f *Fragment) IsZero() bool {
	return f.Summary == "" &&
		len(f.Experiences) == 0 &&
		len(f.Skills) == 0 &&
		len(f.Education) == 0 &&
		len(f.CustomSections) == 0
}

// coerceFragment converts a validated raw reply into typed entities with
// fresh ids. Items that fail entity validation are dropped rather than
// failing the whole fragment.
func coerceFragment(raw *rawFragment) *Fragment {
	out := &Fragment{Summary: raw.Summary}

	for _, e := range raw.Experiences {
		if err := validate.Struct(e); err != nil {
			continue
		}
		out.Experiences = append(out.Experiences, types.Experience{
			ID:          types.NewID(),
			Company:     e.Company,
			Position:    e.Position,
			Location:    e.Location,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Current:     e.Current,
			Description: e.Description,
		})
	}

	for _, s := range raw.Skills {
		if err := validate.Struct(s); err != nil {
			continue
		}
		out.Skills = append(out.Skills, types.Skill{
			ID:    types.NewID(),
			Name:  s.Name,
			Level: coerceLevel(s.Level),
		})
	}

	for _, e := range raw.Education {
		if err := validate.Struct(e); err != nil {
			continue
		}
		out.Education = append(out.Education, types.Education{
			ID:             types.NewID(),
			School:         e.School,
			Degree:         e.Degree,
			Field:          e.Field,
			GraduationDate: e.GraduationDate,
			GPA:            e.GPA,
		})
	}

	for _, c := range raw.CustomSections {
		if err := validate.Struct(c); err != nil {
			continue
		}
		out.CustomSections = append(out.CustomSections, types.CustomSection{
			ID:      types.NewID(),
			Title:   c.Title,
			Content: c.Content,
		})
	}

	return out
}

// coerceLevel maps a loose level string onto the enum, defaulting to Expert,
// the level the editor assigns to AI-suggested skills.
func coerceLevel(level string) types.SkillLevel {
	switch types.SkillLevel(level) {
	case types.LevelBeginner, types.LevelIntermediate, types.LevelExpert:
		return types.SkillLevel(level)
	}
	return types.LevelExpert
}
