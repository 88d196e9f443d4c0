package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 60, cfg.TPS)
	assert.InDelta(t, 1.0/60, cfg.TickSeconds(), 1e-12)
	assert.NotEmpty(t, cfg.Enemies)
	assert.Len(t, cfg.Pickups, 5)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := `
tps: 30
arena:
  width: 800
player:
  prefab: player
  x: 10
  y: 20
enemies:
  - prefab: stalker
    x: 1
    y: 2
muted: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TPS)
	assert.Equal(t, 800.0, cfg.Arena.Width)
	assert.Equal(t, 480.0, cfg.Arena.Height, "unset fields keep defaults")
	assert.Equal(t, Spawn{Prefab: "player", X: 10, Y: 20}, cfg.Player)
	assert.Equal(t, []Spawn{{Prefab: "stalker", X: 1, Y: 2}}, cfg.Enemies)
	assert.True(t, cfg.Muted)
	assert.Len(t, cfg.Pickups, 5)
}

func TestLoadRejectsBadConfig(t *testing.T) {
	cases := map[string]string{
		"bad_yaml":  "tps: [",
		"zero_tps":  "tps: 0",
		"no_arena":  "arena:\n  width: -1",
		"no_player": "player:\n  prefab: \"\"",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "game.yaml")
			require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
