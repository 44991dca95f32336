package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/othello/search"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	sc, err := cfg.SearchConfig()
	require.NoError(t, err)
	assert.Equal(t, search.DefaultConfig(), sc)
	assert.Equal(t, 8, cfg.GetInt(ConfigBoardSize))
	assert.False(t, cfg.GetBool(ConfigDebug))
}

func TestLoadFlags(t *testing.T) {
	cfg := &Config{}
	err := cfg.Load([]string{"--engine", "minimax", "--depth-limit", "0", "--debug", "best", "-limit"})
	require.Error(t, err) // -limit is not a known flag

	cfg = &Config{}
	err = cfg.Load([]string{"--engine", "minimax", "--depth-limit", "0", "--debug", "show"})
	require.NoError(t, err)
	sc, err := cfg.SearchConfig()
	require.NoError(t, err)
	assert.Equal(t, search.Config{Engine: search.EngineMinimax, DepthLimit: 0}, sc)
	assert.True(t, cfg.GetBool(ConfigDebug))
	assert.Equal(t, []string{"show"}, cfg.Args())
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("OTHELLO_DEPTH_LIMIT", "3")
	t.Setenv("OTHELLO_PLAYER_NAME", "Edax Jr")
	cfg := &Config{}
	require.NoError(t, cfg.Load(nil))
	sc, err := cfg.SearchConfig()
	require.NoError(t, err)
	assert.Equal(t, 3, sc.DepthLimit)
	assert.Equal(t, "Edax Jr", cfg.GetString(ConfigPlayerName))

	// flags beat the environment
	cfg = &Config{}
	require.NoError(t, cfg.Load([]string{"--depth-limit", "5"}))
	assert.Equal(t, 5, cfg.GetInt(ConfigDepthLimit))
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "othello.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine: minimax\nboard-size: 6\n"), 0644))

	cfg := &Config{}
	require.NoError(t, cfg.Load([]string{"--config-file", path}))
	assert.Equal(t, "minimax", cfg.GetString(ConfigEngine))
	assert.Equal(t, 6, cfg.GetInt(ConfigBoardSize))

	cfg = &Config{}
	err := cfg.Load([]string{"--config-file", filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)
}

func TestSearchConfigErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Set(ConfigEngine, "mcts")
	_, err := cfg.SearchConfig()
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.Set(ConfigDepthLimit, -2)
	_, err = cfg.SearchConfig()
	assert.Error(t, err)
}
