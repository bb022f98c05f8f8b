package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "minesweeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "production", cfg.Mode)
	assert.Equal(t, mines.DefaultLimits, cfg.MinesLimits())
	require.Len(t, cfg.Presets, 3)

	for _, p := range mines.Presets() {
		s, err := cfg.Preset(p.Name)
		require.NoError(t, err)
		assert.Equal(t, p.Settings, s, p.Name)
	}

	s, err := cfg.NewGame()
	require.NoError(t, err)
	assert.Equal(t, mines.Beginner, s)
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, `
mode: development
game:
  preset: tiny
  policy: clear
  question_mode: true
presets:
  - name: tiny
    rows: 5
    cols: 5
    mines: 3
    policy: none
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Development())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB, "unset keys keep their defaults")

	s, err := cfg.NewGame()
	require.NoError(t, err)
	assert.Equal(t, mines.Settings{Rows: 5, Cols: 5, Mines: 3, Policy: mines.ClearZone, QuestionMode: true}, s)

	names := []string{}
	for _, p := range cfg.AllPresets() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"tiny", "beginner", "intermediate", "expert"}, names)

	s, err = cfg.Preset("EXPERT")
	require.NoError(t, err)
	assert.Equal(t, mines.Expert, s)

	_, err = cfg.Preset("huge")
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "limits:\n  max_size: 30\n")
	t.Setenv("MINESWEEPER_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.MinesLimits().MaxSize)
	assert.Equal(t, 9, cfg.MinesLimits().MinSize)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "unable to read config")

	tests := map[string]string{
		"syntax":      "mode: [",
		"policy":      "game:\n  policy: sometimes\n",
		"preset":      "presets:\n  - name: bad\n    rows: 2\n    cols: 2\n    mines: 4\n",
		"unnamed":     "presets:\n  - rows: 9\n    cols: 9\n    mines: 1\n",
		"limits":      "limits:\n  min_size: 20\n  max_size: 10\n",
		"density":     "limits:\n  max_density: 1.5\n",
		"log level":   "log:\n  level: loud\n",
		"mine limits": "limits:\n  min_mines: 50\n  max_mines: 10\n",
	}
	for name, body := range tests {
		_, err := Load(writeConfig(t, body))
		assert.ErrorContains(t, err, "unable to parse config", name)
	}
}

func TestLoadFirstFallsBack(t *testing.T) {
	dir := t.TempDir()
	cfg, err := loadFirst(filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	second := writeConfig(t, "mode: development\n")
	cfg, err = loadFirst(filepath.Join(dir, "a.yaml"), second)
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Mode)
}

func TestDevelopmentEnv(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, Development())
	assert.True(t, Default().Development())

	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())
	assert.False(t, Default().Development())
}

func TestFields(t *testing.T) {
	fields := Default().Fields()
	assert.Equal(t, "beginner,intermediate,expert", fields["presets"])
	assert.Equal(t, "info", fields["log_level"])
}
