// Package storage provides the persistence adapter for the résumé document:
// a synchronous string-keyed slot with a versioned payload and an in-place
// migration chain for older schema generations.
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/careerpal/careerpal/internal/types"
)

// DefaultKey is the storage slot the editor persists to. The schema version
// lives inside the payload, not in the key, so the key never changes across
// schema generations.
const DefaultKey = "careerpal_data"

// CurrentSchemaVersion is the version written by Save.
const CurrentSchemaVersion = 3

// KV is the raw persistence boundary: a synchronous string-keyed get/set
// store. Implementations must treat a missing key as (nil, false, nil).
type KV interface {
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
	Close() error
}

// Adapter loads and saves whole-document snapshots through a KV backend.
type Adapter struct {
	kv  KV
	key string
}

// envelope wraps the persisted document with its schema version.
type envelope struct {
	SchemaVersion int             `json:"schema_version"`
	Data          json.RawMessage `json:"data"`
}

// NewAdapter creates an adapter over the given backend. An empty key uses
// DefaultKey.
func NewAdapter(kv KV, key string) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	return &Adapter{kv: kv, key: key}
}

// Load reads the persisted document. If the slot is absent, or the payload
// cannot be parsed even after migration, it returns a fresh default document
// rather than an error-shaped document: loss of persisted state must not
// crash the editor.
func (a *Adapter) Load() (*types.ResumeDocument, error) {
	raw, found, err := a.kv.Get(a.key)
	if err != nil {
		return types.DefaultDocument(), &StorageError{Message: "failed to read persisted document", Cause: err}
	}
	if !found || len(raw) == 0 {
		return types.DefaultDocument(), nil
	}

	version, data := unwrap(raw)
	migrated, err := Migrate(data, version)
	if err != nil {
		return types.DefaultDocument(), &StorageError{Message: "failed to migrate persisted document", Cause: err}
	}

	doc := types.DefaultDocument()
	if err := json.Unmarshal(migrated, doc); err != nil {
		return types.DefaultDocument(), &StorageError{Message: "failed to parse persisted document", Cause: err}
	}
	if !types.ValidTemplate(doc.TemplateID) {
		doc.TemplateID = types.TemplateModern
	}
	return doc, nil
}

// Save serializes the document under the current schema version and writes it
// synchronously.
func (a *Adapter) Save(doc *types.ResumeDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return &StorageError{Message: "failed to serialize document", Cause: err}
	}
	wrapped, err := json.Marshal(envelope{SchemaVersion: CurrentSchemaVersion, Data: data})
	if err != nil {
		return &StorageError{Message: "failed to serialize envelope", Cause: err}
	}
	if err := a.kv.Set(a.key, wrapped); err != nil {
		return &StorageError{Message: "failed to write document", Cause: err}
	}
	return nil
}

// Close releases the underlying backend.
func (a *Adapter) Close() error {
	return a.kv.Close()
}

// unwrap extracts the schema version and document payload. Payloads from the
// first generation were written without an envelope; those are treated as
// version 1.
func unwrap(raw []byte) (int, json.RawMessage) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.SchemaVersion > 0 && len(env.Data) > 0 {
		return env.SchemaVersion, env.Data
	}
	return 1, raw
}

// StorageError wraps backend and serialization failures.
type StorageError struct {
	Message string
	Cause   error
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("storage: %s", e.Message)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}
