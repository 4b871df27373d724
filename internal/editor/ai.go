package editor

import (
	"context"
	"strings"

	"github.com/careerpal/careerpal/internal/ai"
	"github.com/careerpal/careerpal/internal/types"
)

// AI-backed editor actions. Each acquires a busy token for the interacted
// field, calls the content service, and releases the token exactly once.
// Results are re-merged against the document state current at completion
// time, never against a snapshot from when the call started: a user edit that
// lands while the call is pending survives in every untouched field, and for
// the touched field the last write by completion order wins. An empty result
// is a no-op.

// PolishSummary rewrites the professional summary in place. Token: "summary".
func (e *Editor) PolishSummary(ctx context.Context, industry, level string) {
	if e.ai == nil {
		return
	}
	e.busy.Acquire("summary")
	defer e.busy.Release("summary")

	summary := e.store.Get().PersonalInfo.Summary
	result := e.ai.OptimizeSummary(ctx, summary, industry, level)
	if result == "" {
		return
	}
	e.UpdatePersonalInfo("summary", result)
}

// RewriteExperience replaces one experience's description with generated
// bullet points. Token: "experience:<id>". A no-op if the experience was
// removed while the call was pending.
func (e *Editor) RewriteExperience(ctx context.Context, id string) {
	if e.ai == nil {
		return
	}
	token := "experience:" + id
	e.busy.Acquire(token)
	defer e.busy.Release(token)

	var target *types.Experience
	for _, exp := range e.store.Get().Experiences {
		if exp.ID == id {
			target = &exp
			break
		}
	}
	if target == nil {
		return
	}

	result := e.ai.GenerateBulletPoints(ctx, target.Position, target.Company, target.Description)
	if result == "" {
		return
	}
	e.UpdateExperienceField(id, "description", result)
}

// SuggestSkills appends AI-suggested skills to the current list, capped at
// maxSkills entries total. Token: "skills". The request is issued even when
// the document has no experience or project context.
func (e *Editor) SuggestSkills(ctx context.Context) {
	if e.ai == nil {
		return
	}
	e.busy.Acquire("skills")
	defer e.busy.Release("skills")

	doc := e.store.Get()
	expTexts := make([]string, len(doc.Experiences))
	for i, exp := range doc.Experiences {
		expTexts[i] = exp.Description
	}
	projTexts := make([]string, len(doc.Projects))
	for i, p := range doc.Projects {
		projTexts[i] = p.Description
	}

	names := e.ai.SuggestSkills(ctx, expTexts, projTexts)
	if len(names) == 0 {
		return
	}

	// Re-read: the list may have changed while the call was pending.
	current := e.store.Get().Skills
	next := append([]types.Skill(nil), current...)
	for _, name := range names {
		next = append(next, types.Skill{ID: types.NewID(), Name: name, Level: types.LevelExpert})
	}
	if len(next) > maxSkills {
		next = next[:maxSkills]
	}
	e.store.Update(&types.DocumentPatch{Skills: &next})
}

// Tailor rewrites the document against a job description and merges the
// returned fragment. Token: "tailor". Sections absent from the fragment keep
// their current content.
func (e *Editor) Tailor(ctx context.Context, jobDescription string) {
	if e.ai == nil {
		return
	}
	e.busy.Acquire("tailor")
	defer e.busy.Release("tailor")

	resumeText := ai.ResumeText(e.store.Get())
	fragment := e.ai.TailorResume(ctx, resumeText, jobDescription)
	e.mergeFragment(fragment)
}

// ApplyFresherPreset fills the document from a generated starter fragment
// for the given career domain. Token: "fresher".
func (e *Editor) ApplyFresherPreset(ctx context.Context, domainLabel string) {
	if e.ai == nil {
		return
	}
	e.busy.Acquire("fresher")
	defer e.busy.Release("fresher")

	fragment := e.ai.FresherPreset(ctx, domainLabel)
	e.mergeFragment(fragment)
}

// SuggestSectionTitles returns AI-suggested custom-section titles. The user
// (or caller) decides which to add via AddCustomSection. Token: "sections".
func (e *Editor) SuggestSectionTitles(ctx context.Context) []string {
	if e.ai == nil {
		return nil
	}
	e.busy.Acquire("sections")
	defer e.busy.Release("sections")

	doc := e.store.Get()
	var parts []string
	if doc.PersonalInfo.Summary != "" {
		parts = append(parts, "Summary: "+doc.PersonalInfo.Summary)
	}
	for _, exp := range doc.Experiences {
		if exp.Description != "" {
			parts = append(parts, exp.Description)
		}
	}
	if len(doc.CustomSections) > 0 {
		titles := make([]string, len(doc.CustomSections))
		for i, cs := range doc.CustomSections {
			titles[i] = cs.Title
		}
		parts = append(parts, "Existing sections: "+strings.Join(titles, ", "))
	}

	return e.ai.SuggestCustomSections(ctx, strings.Join(parts, "\n"))
}

// mergeFragment merges a coerced AI fragment into the current document
// state. Empty fragment fields are skipped; a zero fragment is a no-op.
func (e *Editor) mergeFragment(fragment *ai.Fragment) {
	if fragment == nil || fragment.IsZero() {
		return
	}

	doc := e.store.Get()
	patch := &types.DocumentPatch{}
	if fragment.Summary != "" {
		pi := doc.PersonalInfo
		pi.Summary = fragment.Summary
		patch.PersonalInfo = &pi
	}
	if len(fragment.Experiences) > 0 {
		patch.Experiences = &fragment.Experiences
	}
	if len(fragment.Skills) > 0 {
		patch.Skills = &fragment.Skills
	}
	if len(fragment.Education) > 0 {
		patch.Education = &fragment.Education
	}
	if len(fragment.CustomSections) > 0 {
		patch.CustomSections = &fragment.CustomSections
	}
	e.store.Update(patch)
}
