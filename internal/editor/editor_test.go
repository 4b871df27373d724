package editor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpal/careerpal/internal/storage"
	"github.com/careerpal/careerpal/internal/store"
	"github.com/careerpal/careerpal/internal/types"
)

// memoryKV is an in-memory backend for editor tests.
type memoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: map[string][]byte{}}
}

func (m *memoryKV) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *memoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memoryKV) Close() error { return nil }

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	return New(store.New(storage.NewAdapter(newMemoryKV(), "")), nil)
}

func TestUpdatePersonalInfo(t *testing.T) {
	e := newTestEditor(t)

	e.UpdatePersonalInfo("fullName", "Jane Doe")
	e.UpdatePersonalInfo("email", "jane@example.com")
	e.UpdatePersonalInfo("summary", "Builds systems")

	pi := e.store.Get().PersonalInfo
	assert.Equal(t, "Jane Doe", pi.FullName)
	assert.Equal(t, "jane@example.com", pi.Email)
	assert.Equal(t, "Builds systems", pi.Summary)
}

func TestUpdatePersonalInfo_UnknownFieldIgnored(t *testing.T) {
	e := newTestEditor(t)
	e.UpdatePersonalInfo("shoeSize", "42")
	assert.Equal(t, *types.DefaultDocument(), *e.store.Get())
}

func TestSelectTemplate(t *testing.T) {
	e := newTestEditor(t)

	e.SelectTemplate(types.TemplateClassic)
	assert.Equal(t, types.TemplateClassic, e.store.Get().TemplateID)

	// Unknown ids leave the selection untouched.
	e.SelectTemplate("brutalist")
	assert.Equal(t, types.TemplateClassic, e.store.Get().TemplateID)
}

func TestExperienceLifecycle(t *testing.T) {
	e := newTestEditor(t)

	id := e.AddExperience()
	require.NotEmpty(t, id)

	e.UpdateExperienceField(id, "company", "Acme")
	e.UpdateExperienceField(id, "position", "Engineer")
	e.UpdateExperienceField(id, "current", "true")

	exps := e.store.Get().Experiences
	require.Len(t, exps, 1)
	assert.Equal(t, "Acme", exps[0].Company)
	assert.Equal(t, "Engineer", exps[0].Position)
	assert.True(t, exps[0].Current)

	e.RemoveExperience(id)
	assert.Empty(t, e.store.Get().Experiences)
}

func TestUpdateExperienceField_When(t *testing.T) {
	e := newTestEditor(t)
	id := e.AddExperience()

	e.UpdateExperienceField(id, "when", "Jan 2020 - Mar 2023")
	exp := e.store.Get().Experiences[0]
	assert.Equal(t, "Jan 2020", exp.StartDate)
	assert.Equal(t, "Mar 2023", exp.EndDate)

	// No separator: everything is the start date.
	e.UpdateExperienceField(id, "when", "2024")
	exp = e.store.Get().Experiences[0]
	assert.Equal(t, "2024", exp.StartDate)
	assert.Empty(t, exp.EndDate)
}

func TestUpdateExperienceField_UnknownIDIgnored(t *testing.T) {
	e := newTestEditor(t)
	e.AddExperience()

	e.UpdateExperienceField("no-such-id", "company", "Acme")
	assert.Empty(t, e.store.Get().Experiences[0].Company)
}

func TestAddSkill(t *testing.T) {
	e := newTestEditor(t)

	id := e.AddSkill("Go")
	require.NotEmpty(t, id)

	skills := e.store.Get().Skills
	require.Len(t, skills, 1)
	assert.Equal(t, "Go", skills[0].Name)
	assert.Equal(t, types.LevelExpert, skills[0].Level)
}

func TestAddSkill_EmptyNameRejected(t *testing.T) {
	e := newTestEditor(t)
	assert.Empty(t, e.AddSkill(""))
	assert.Empty(t, e.store.Get().Skills)
}

func TestAddSkill_DuplicatesAllowed(t *testing.T) {
	e := newTestEditor(t)

	first := e.AddSkill("Go")
	second := e.AddSkill("Go")

	skills := e.store.Get().Skills
	require.Len(t, skills, 2)
	assert.NotEqual(t, first, second)
	assert.Equal(t, skills[0].Name, skills[1].Name)
}

func TestEducationLifecycle(t *testing.T) {
	e := newTestEditor(t)

	id := e.AddEducation()
	e.UpdateEducationField(id, "school", "State U")
	e.UpdateEducationField(id, "degree", "BS")
	e.UpdateEducationField(id, "gpa", "3.8")

	edu := e.store.Get().Education
	require.Len(t, edu, 1)
	assert.Equal(t, "State U", edu[0].School)
	assert.Equal(t, "3.8", edu[0].GPA)

	e.RemoveEducation(id)
	assert.Empty(t, e.store.Get().Education)
}

func TestAwardAndCertificationLifecycle(t *testing.T) {
	e := newTestEditor(t)

	awardID := e.AddAward()
	e.UpdateAwardField(awardID, "title", "Best Paper")
	e.UpdateAwardField(awardID, "issuer", "ACM")

	certID := e.AddCertification()
	e.UpdateCertificationField(certID, "name", "CKA")
	e.UpdateCertificationField(certID, "date", "2024")

	doc := e.store.Get()
	require.Len(t, doc.Awards, 1)
	assert.Equal(t, "Best Paper", doc.Awards[0].Title)
	require.Len(t, doc.Certifications, 1)
	assert.Equal(t, "CKA", doc.Certifications[0].Name)

	e.RemoveAward(awardID)
	e.RemoveCertification(certID)
	doc = e.store.Get()
	assert.Empty(t, doc.Awards)
	assert.Empty(t, doc.Certifications)
}

func TestCustomSectionLifecycle(t *testing.T) {
	e := newTestEditor(t)

	id := e.AddCustomSection("Volunteering")
	e.UpdateCustomSectionField(id, "content", "Food bank, weekends")

	sections := e.store.Get().CustomSections
	require.Len(t, sections, 1)
	assert.Equal(t, "Volunteering", sections[0].Title)
	assert.Equal(t, "Food bank, weekends", sections[0].Content)

	e.RemoveCustomSection(id)
	assert.Empty(t, e.store.Get().CustomSections)
}

func TestCustomSections_OrderPreserved(t *testing.T) {
	e := newTestEditor(t)

	e.AddCustomSection("First")
	e.AddCustomSection("Second")
	e.AddCustomSection("Third")

	sections := e.store.Get().CustomSections
	require.Len(t, sections, 3)
	assert.Equal(t, "First", sections[0].Title)
	assert.Equal(t, "Third", sections[2].Title)
}

func TestRemove_UnknownIDIsNoOp(t *testing.T) {
	e := newTestEditor(t)
	e.AddSkill("Go")

	e.RemoveSkill("no-such-id")
	assert.Len(t, e.store.Get().Skills, 1)
}

func TestBusy_CountsOverlappingCalls(t *testing.T) {
	b := NewBusy()

	b.Acquire("summary")
	b.Acquire("summary")
	assert.True(t, b.Held("summary"))

	b.Release("summary")
	assert.True(t, b.Held("summary"))

	b.Release("summary")
	assert.False(t, b.Held("summary"))
	assert.Empty(t, b.Tokens())
}

func TestBusy_TokensAreIndependent(t *testing.T) {
	b := NewBusy()

	b.Acquire("skills")
	b.Acquire("experience:e1")

	assert.True(t, b.Held("skills"))
	assert.True(t, b.Held("experience:e1"))
	assert.False(t, b.Held("experience:e2"))
	assert.ElementsMatch(t, []string{"skills", "experience:e1"}, b.Tokens())

	b.Release("skills")
	assert.False(t, b.Held("skills"))
	assert.True(t, b.Held("experience:e1"))
}

func TestBusy_ReleaseUnheldIsSafe(t *testing.T) {
	b := NewBusy()
	b.Release("never-acquired")
	assert.False(t, b.Held("never-acquired"))
}
