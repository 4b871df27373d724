package storage

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpal/careerpal/internal/types"
)

// memoryKV is an in-memory KV for adapter tests.
type memoryKV struct {
	data    map[string][]byte
	getErr  error
	setErr  error
	setKeys []string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: map[string][]byte{}}
}

func (m *memoryKV) Get(key string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *memoryKV) Set(key string, value []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.setKeys = append(m.setKeys, key)
	m.data[key] = value
	return nil
}

func (m *memoryKV) Close() error { return nil }

func TestAdapter_LoadAbsentReturnsDefault(t *testing.T) {
	adapter := NewAdapter(newMemoryKV(), "")

	doc, err := adapter.Load()
	require.NoError(t, err)
	assert.Equal(t, types.TemplateModern, doc.TemplateID)
	assert.Empty(t, doc.Experiences)
}

func TestAdapter_SaveLoadRoundtrip(t *testing.T) {
	kv := newMemoryKV()
	adapter := NewAdapter(kv, "")

	doc := types.DefaultDocument()
	doc.PersonalInfo.FullName = "Jane Doe"
	doc.Experiences = []types.Experience{{ID: "e1", Company: "Acme", Current: true}}
	doc.TemplateID = types.TemplateClassic
	require.NoError(t, adapter.Save(doc))

	// The payload is wrapped with the current schema version.
	var env envelope
	require.NoError(t, json.Unmarshal(kv.data[DefaultKey], &env))
	assert.Equal(t, CurrentSchemaVersion, env.SchemaVersion)

	loaded, err := adapter.Load()
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", loaded.PersonalInfo.FullName)
	assert.Equal(t, types.TemplateClassic, loaded.TemplateID)
	require.Len(t, loaded.Experiences, 1)
	assert.True(t, loaded.Experiences[0].Current)
}

func TestAdapter_LoadBarePayloadMigratesFromV1(t *testing.T) {
	kv := newMemoryKV()
	// First-generation payloads were written without an envelope and predate
	// awards, certifications, and custom sections.
	kv.data[DefaultKey] = []byte(`{
		"personalInfo": {"fullName": "Jane Doe", "email": "", "phone": "", "location": "", "website": "", "linkedin": "", "summary": ""},
		"experiences": [],
		"education": [],
		"skills": [{"id": "s1", "name": "Go", "level": "Expert"}],
		"projects": [],
		"templateId": "minimalist"
	}`)

	doc, err := NewAdapter(kv, "").Load()
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", doc.PersonalInfo.FullName)
	assert.Equal(t, types.TemplateMinimalist, doc.TemplateID)
	require.Len(t, doc.Skills, 1)
	assert.NotNil(t, doc.Awards)
	assert.NotNil(t, doc.Certifications)
	assert.NotNil(t, doc.CustomSections)
}

func TestAdapter_LoadCorruptPayloadReturnsDefault(t *testing.T) {
	kv := newMemoryKV()
	kv.data[DefaultKey] = []byte(`{not json`)

	doc, err := NewAdapter(kv, "").Load()
	require.Error(t, err)
	assert.Equal(t, types.TemplateModern, doc.TemplateID)
	assert.NotNil(t, doc.Experiences)
}

func TestAdapter_LoadBackendErrorReturnsDefault(t *testing.T) {
	kv := newMemoryKV()
	kv.getErr = errors.New("disk gone")

	doc, err := NewAdapter(kv, "").Load()
	require.Error(t, err)

	var serr *StorageError
	assert.ErrorAs(t, err, &serr)
	assert.Equal(t, types.TemplateModern, doc.TemplateID)
}

func TestAdapter_LoadInvalidTemplateFallsBack(t *testing.T) {
	kv := newMemoryKV()
	adapter := NewAdapter(kv, "")

	doc := types.DefaultDocument()
	doc.TemplateID = types.TemplateID("brutalist")
	require.NoError(t, adapter.Save(doc))

	loaded, err := adapter.Load()
	require.NoError(t, err)
	assert.Equal(t, types.TemplateModern, loaded.TemplateID)
}

func TestAdapter_CustomKey(t *testing.T) {
	kv := newMemoryKV()
	adapter := NewAdapter(kv, "other_slot")

	require.NoError(t, adapter.Save(types.DefaultDocument()))
	assert.Equal(t, []string{"other_slot"}, kv.setKeys)
}

func TestMigrate_CurrentVersionPassesThrough(t *testing.T) {
	in := json.RawMessage(`{"skills": []}`)
	out, err := Migrate(in, CurrentSchemaVersion)
	require.NoError(t, err)
	assert.JSONEq(t, string(in), string(out))
}

func TestMigrate_V2AddsCustomSectionsOnly(t *testing.T) {
	in := json.RawMessage(`{"awards": [{"id": "a1"}]}`)
	out, err := Migrate(in, 2)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Contains(t, doc, "customSections")
	// Existing sections are never overwritten.
	assert.Len(t, doc["awards"], 1)
}

func TestMigrate_UnsupportedVersion(t *testing.T) {
	_, err := Migrate(json.RawMessage(`{}`), CurrentSchemaVersion+1)
	assert.Error(t, err)

	_, err = Migrate(json.RawMessage(`{}`), 0)
	assert.Error(t, err)
}
