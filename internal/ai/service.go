// Package ai provides the AI Content Service: stateless one-shot operations
// that build a prompt from current document fields, call the generation API,
// and parse the reply into plain text or a typed partial-document fragment.
//
// Contract shared by every operation: a transport failure or malformed reply
// never propagates past this boundary. Plain-text operations return an empty
// string, structured operations an empty result, and callers treat that as
// "no-op, keep existing content".
package ai

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/careerpal/careerpal/internal/llm"
	"github.com/careerpal/careerpal/internal/prompts"
)

// promptFile names the embedded prompt-template file.
const promptFile = "content.json"

// Service issues one-shot content requests against an llm.Client.
type Service struct {
	client llm.Client
}

// New creates a content service over the given client.
func New(client llm.Client) *Service {
	return &Service{client: client}
}

// OptimizeSummary rewrites the current summary. Industry and level are
// optional context; empty strings omit them from the prompt. Returns the
// empty string on any failure.
func (s *Service) OptimizeSummary(ctx context.Context, summary, industry, level string) string {
	industryLine := ""
	if industry != "" {
		industryLine = "Target industry: " + industry + "\n"
	}
	levelLine := ""
	if level != "" {
		levelLine = "Experience level: " + level + "\n"
	}
	prompt := prompts.Format(prompts.MustGet(promptFile, "optimize_summary"), map[string]string{
		"Summary":      summary,
		"IndustryLine": industryLine,
		"LevelLine":    levelLine,
	})

	text, err := s.client.GenerateText(ctx, prompt, llm.TierFast)
	if err != nil {
		log.Printf("[ai] optimize summary failed: %v", err)
		return ""
	}
	return strings.TrimSpace(text)
}

// GenerateBulletPoints converts a free-text role description into 3-5
// bullet-style lines. Returns the empty string on any failure.
func (s *Service) GenerateBulletPoints(ctx context.Context, position, company, rawText string) string {
	prompt := prompts.Format(prompts.MustGet(promptFile, "bullet_points"), map[string]string{
		"Position":    position,
		"Company":     company,
		"Description": rawText,
	})

	text, err := s.client.GenerateText(ctx, prompt, llm.TierFast)
	if err != nil {
		log.Printf("[ai] bullet points failed: %v", err)
		return ""
	}
	return strings.TrimSpace(text)
}

// SuggestSkills suggests skill names from experience and project context.
// The request is issued even with empty context; the reply must be a strict
// JSON array of strings. Returns nil on any failure.
func (s *Service) SuggestSkills(ctx context.Context, experienceTexts, projectTexts []string) []string {
	prompt := prompts.Format(prompts.MustGet(promptFile, "suggest_skills"), map[string]string{
		"Experiences": strings.Join(experienceTexts, "; "),
		"Projects":    strings.Join(projectTexts, "; "),
	})
	return s.stringArray(ctx, "suggest skills", prompt)
}

// SuggestCustomSections suggests additional section titles for the resume.
// Returns nil on any failure.
func (s *Service) SuggestCustomSections(ctx context.Context, resumeContext string) []string {
	prompt := prompts.Format(prompts.MustGet(promptFile, "suggest_sections"), map[string]string{
		"Context": resumeContext,
	})
	return s.stringArray(ctx, "suggest sections", prompt)
}

// TailorResume rewrites the resume against a job description and returns a
// partial document fragment {summary, experiences, skills, education}. Every
// fragment item carries a fresh id. Returns an empty fragment on any failure.
func (s *Service) TailorResume(ctx context.Context, resumeText, jobDescription string) *Fragment {
	prompt := prompts.Format(prompts.MustGet(promptFile, "tailor_resume"), map[string]string{
		"Resume":         resumeText,
		"JobDescription": jobDescription,
	})
	return s.fragment(ctx, "tailor resume", prompt, tailorSchema, llm.TierQuality)
}

// FresherPreset generates a starter document fragment {summary, experiences,
// skills, customSections} for an entry-level candidate in the given career
// domain. Returns an empty fragment on any failure.
func (s *Service) FresherPreset(ctx context.Context, domainLabel string) *Fragment {
	prompt := prompts.Format(prompts.MustGet(promptFile, "fresher_preset"), map[string]string{
		"Domain": domainLabel,
	})
	return s.fragment(ctx, "fresher preset", prompt, fresherSchema, llm.TierQuality)
}

// stringArray runs a JSON generation expecting a strict array of strings.
func (s *Service) stringArray(ctx context.Context, op, prompt string) []string {
	reply, err := s.client.GenerateJSON(ctx, prompt, llm.TierFast)
	if err != nil {
		log.Printf("[ai] %s failed: %v", op, err)
		return nil
	}
	if !s.valid(op, stringArraySchema, reply) {
		return nil
	}

	var out []string
	if err := json.Unmarshal([]byte(reply), &out); err != nil {
		log.Printf("[ai] %s returned unparseable JSON: %v", op, err)
		return nil
	}
	return out
}

// fragment runs a JSON generation expecting a partial-document object,
// validates it against the declared schema, and coerces it into typed
// entities with fresh ids.
func (s *Service) fragment(ctx context.Context, op, prompt, schema string, tier llm.ModelTier) *Fragment {
	reply, err := s.client.GenerateJSON(ctx, prompt, tier)
	if err != nil {
		log.Printf("[ai] %s failed: %v", op, err)
		return &Fragment{}
	}
	if !s.valid(op, schema, reply) {
		return &Fragment{}
	}

	var raw rawFragment
	if err := json.Unmarshal([]byte(reply), &raw); err != nil {
		log.Printf("[ai] %s returned unparseable JSON: %v", op, err)
		return &Fragment{}
	}
	return coerceFragment(&raw)
}

// valid checks a reply against a schema, logging the failure reason.
func (s *Service) valid(op, schema, reply string) bool {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(reply),
	)
	if err != nil {
		log.Printf("[ai] %s reply is not valid JSON: %v", op, err)
		return false
	}
	if !result.Valid() {
		for _, desc := range result.Errors() {
			log.Printf("[ai] %s reply rejected: %s: %s", op, desc.Field(), desc.Description())
		}
		return false
	}
	return true
}
