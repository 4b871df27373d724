package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpal/careerpal/internal/ai"
	"github.com/careerpal/careerpal/internal/llm"
	"github.com/careerpal/careerpal/internal/storage"
	"github.com/careerpal/careerpal/internal/store"
	"github.com/careerpal/careerpal/internal/types"
)

// fakeClient replays canned replies for AI-backed editor tests.
type fakeClient struct {
	textReply string
	jsonReply string
	err       error
	prompts   []string
}

func (f *fakeClient) GenerateText(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.textReply, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.jsonReply, f.err
}

func (f *fakeClient) Close() error { return nil }

func newAIEditor(t *testing.T, client *fakeClient) *Editor {
	t.Helper()
	st := store.New(storage.NewAdapter(newMemoryKV(), ""))
	return New(st, ai.New(client))
}

func TestPolishSummary(t *testing.T) {
	e := newAIEditor(t, &fakeClient{textReply: "Crisper summary."})
	e.UpdatePersonalInfo("summary", "old words")

	e.PolishSummary(context.Background(), "Fintech", "Senior")

	assert.Equal(t, "Crisper summary.", e.store.Get().PersonalInfo.Summary)
	assert.False(t, e.busy.Held("summary"))
}

func TestPolishSummary_FailureKeepsCurrent(t *testing.T) {
	e := newAIEditor(t, &fakeClient{err: errors.New("quota")})
	e.UpdatePersonalInfo("summary", "old words")

	e.PolishSummary(context.Background(), "", "")

	assert.Equal(t, "old words", e.store.Get().PersonalInfo.Summary)
	assert.False(t, e.busy.Held("summary"))
}

func TestPolishSummary_NilServiceIsNoOp(t *testing.T) {
	e := newTestEditor(t)
	e.UpdatePersonalInfo("summary", "old words")
	e.PolishSummary(context.Background(), "", "")
	assert.Equal(t, "old words", e.store.Get().PersonalInfo.Summary)
}

func TestRewriteExperience(t *testing.T) {
	client := &fakeClient{textReply: "• Did the thing\n• Measured it"}
	e := newAIEditor(t, client)

	id := e.AddExperience()
	e.UpdateExperienceField(id, "position", "Engineer")
	e.UpdateExperienceField(id, "description", "did stuff")

	e.RewriteExperience(context.Background(), id)

	exp := e.store.Get().Experiences[0]
	assert.Contains(t, exp.Description, "Did the thing")
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Engineer")
}

func TestRewriteExperience_RemovedEntryIsNoOp(t *testing.T) {
	client := &fakeClient{textReply: "bullets"}
	e := newAIEditor(t, client)

	e.RewriteExperience(context.Background(), "gone")

	assert.Empty(t, client.prompts)
	assert.False(t, e.busy.Held("experience:gone"))
}

func TestSuggestSkills_AppendsAndCaps(t *testing.T) {
	e := newAIEditor(t, &fakeClient{
		jsonReply: `["S1","S2","S3","S4","S5","S6","S7","S8","S9","S10","S11","S12"]`,
	})
	for _, name := range []string{"Go", "SQL", "Docker", "Linux", "Git"} {
		e.AddSkill(name)
	}

	e.SuggestSkills(context.Background())

	skills := e.store.Get().Skills
	// 5 existing + 12 suggested, capped at 15.
	require.Len(t, skills, 15)
	assert.Equal(t, "Go", skills[0].Name)
	assert.Equal(t, "S1", skills[5].Name)
	for _, s := range skills[5:] {
		assert.Equal(t, types.LevelExpert, s.Level)
	}
}

func TestSuggestSkills_EmptyReplyKeepsList(t *testing.T) {
	e := newAIEditor(t, &fakeClient{jsonReply: `[]`})
	e.AddSkill("Go")

	e.SuggestSkills(context.Background())
	assert.Len(t, e.store.Get().Skills, 1)
}

func TestTailor_MergesFragment(t *testing.T) {
	e := newAIEditor(t, &fakeClient{jsonReply: `{
		"summary": "Tailored",
		"skills": [{"name": "Go"}]
	}`})
	e.UpdatePersonalInfo("fullName", "Jane Doe")
	e.UpdatePersonalInfo("summary", "old")
	id := e.AddEducation()
	e.UpdateEducationField(id, "school", "State U")

	e.Tailor(context.Background(), "job description")

	doc := e.store.Get()
	assert.Equal(t, "Tailored", doc.PersonalInfo.Summary)
	// Identity fields outside the fragment survive.
	assert.Equal(t, "Jane Doe", doc.PersonalInfo.FullName)
	// Sections absent from the fragment keep their content.
	require.Len(t, doc.Education, 1)
	assert.Equal(t, "State U", doc.Education[0].School)
	require.Len(t, doc.Skills, 1)
	assert.Equal(t, "Go", doc.Skills[0].Name)
}

func TestTailor_EmptyFragmentIsNoOp(t *testing.T) {
	e := newAIEditor(t, &fakeClient{err: errors.New("boom")})
	e.UpdatePersonalInfo("summary", "old")

	e.Tailor(context.Background(), "job description")

	assert.Equal(t, "old", e.store.Get().PersonalInfo.Summary)
	assert.False(t, e.busy.Held("tailor"))
}

func TestApplyFresherPreset(t *testing.T) {
	e := newAIEditor(t, &fakeClient{jsonReply: `{
		"summary": "Eager graduate",
		"skills": [{"name": "Python"}],
		"customSections": [{"title": "Coursework", "content": "Algorithms"}]
	}`})

	e.ApplyFresherPreset(context.Background(), "Data Science")

	doc := e.store.Get()
	assert.Equal(t, "Eager graduate", doc.PersonalInfo.Summary)
	require.Len(t, doc.CustomSections, 1)
	assert.Equal(t, "Coursework", doc.CustomSections[0].Title)
}

func TestSuggestSectionTitles_DoesNotMutate(t *testing.T) {
	e := newAIEditor(t, &fakeClient{jsonReply: `["Volunteering","Publications"]`})
	e.UpdatePersonalInfo("summary", "Builds systems")
	before := e.store.Get()

	titles := e.SuggestSectionTitles(context.Background())

	assert.Equal(t, []string{"Volunteering", "Publications"}, titles)
	assert.Equal(t, *before, *e.store.Get())
}
