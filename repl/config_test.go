package repl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quill.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"quill> \"\nbanner: Quill Shell\n"), 0o644))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "quill> ", cfg.Prompt)
	assert.Equal(t, "Quill Shell", cfg.Banner)
	assert.Empty(t, cfg.HistoryFile)
}

func TestLoadConfigMissingFileErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewWithConfigFallsBackToDefaults(t *testing.T) {
	r := NewWithConfig(ReplConfig{})
	assert.Equal(t, Prompt, r.Prompt)
	assert.Equal(t, defaultBanner, r.Banner)
}

func TestNewWithConfigOverridesFields(t *testing.T) {
	r := NewWithConfig(ReplConfig{Prompt: "q> ", Banner: "Q", HistoryFile: "/tmp/quill_history"})
	assert.Equal(t, "q> ", r.Prompt)
	assert.Equal(t, "Q", r.Banner)
	assert.Equal(t, "/tmp/quill_history", r.HistoryFile)
}
