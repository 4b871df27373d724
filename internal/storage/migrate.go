package storage

import (
	"encoding/json"
	"fmt"
)

// migration upgrades a decoded document payload by exactly one version.
type migration func(doc map[string]any)

// migrations[n] upgrades version n+1 to n+2.
var migrations = []migration{
	migrateV1toV2,
	migrateV2toV3,
}

// Migrate upgrades a document payload from the given version to the current
// schema version. Payloads already at the current version pass through
// untouched. Unknown future versions are an error: downgrading is not
// supported.
func Migrate(data json.RawMessage, version int) (json.RawMessage, error) {
	if version == CurrentSchemaVersion {
		return data, nil
	}
	if version < 1 || version > CurrentSchemaVersion {
		return nil, fmt.Errorf("unsupported schema version %d", version)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode version %d payload: %w", version, err)
	}

	for v := version; v < CurrentSchemaVersion; v++ {
		migrations[v-1](doc)
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode migrated payload: %w", err)
	}
	return out, nil
}

// migrateV1toV2 adds the awards and certifications sections introduced in the
// second generation of the editor.
func migrateV1toV2(doc map[string]any) {
	ensureList(doc, "awards")
	ensureList(doc, "certifications")
}

// migrateV2toV3 adds custom sections.
func migrateV2toV3(doc map[string]any) {
	ensureList(doc, "customSections")
}

func ensureList(doc map[string]any, key string) {
	if _, ok := doc[key]; !ok {
		doc[key] = []any{}
	}
}
