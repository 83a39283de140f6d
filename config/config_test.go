package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesSuggestedValues(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 8, cfg.Search.MaxWorkers)
	assert.EqualValues(t, 5, cfg.Weights.Pawn)
	assert.EqualValues(t, 200, cfg.Weights.Queen)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chessbot.toml")
	doc := "[search]\nmax_workers = 2\n\n[weights]\nqueen = 950\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Search.MaxWorkers)
	assert.EqualValues(t, 950, cfg.Weights.Queen)
	assert.EqualValues(t, 5, cfg.Weights.Pawn, "fields absent from the file keep Default()'s value")
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
