package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"data_dir": "/tmp/careerpal",
		"backend": "sqlite",
		"save_policy": "debounced",
		"save_delay": "250ms",
		"port": 9090
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/careerpal", cfg.DataDir)
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, "debounced", cfg.SavePolicy)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.SaveDelayDuration())
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_BadJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
	assert.NoError(t, (&Config{Backend: "file", SavePolicy: "immediate"}).Validate())

	assert.Error(t, (&Config{Backend: "postgres"}).Validate())
	assert.Error(t, (&Config{SavePolicy: "sometimes"}).Validate())
	assert.Error(t, (&Config{SaveDelay: "soonish"}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Backend: "sqlite"}
	merged := cfg.MergeWithDefaults(Config{
		DataDir: "/default/dir",
		Backend: "file",
		Port:    8080,
	})

	assert.Equal(t, "sqlite", merged.Backend)
	assert.Equal(t, "/default/dir", merged.DataDir)
	assert.Equal(t, 8080, merged.Port)
}

func TestSaveDelayDuration_UnsetIsZero(t *testing.T) {
	assert.Zero(t, (&Config{}).SaveDelayDuration())
	assert.Zero(t, (&Config{SaveDelay: "bogus"}).SaveDelayDuration())
}
