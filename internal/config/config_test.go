package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "linear", cfg.Strategy)
	assert.Empty(t, cfg.DeckPath)
	assert.Empty(t, cfg.LogFile)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FLIP_STRATEGY", "shuffle")
	t.Setenv("FLIP_DECK", "decks/spanish.json")
	t.Setenv("FLIP_LOG_FILE", "flip.log")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "shuffle", cfg.Strategy)
	assert.Equal(t, "decks/spanish.json", cfg.DeckPath)
	assert.Equal(t, "flip.log", cfg.LogFile)
}
