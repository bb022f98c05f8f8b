package config

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

type PresetConfig struct {
	Name   string                 `yaml:"name"`
	Rows   int                    `yaml:"rows"`
	Cols   int                    `yaml:"cols"`
	Mines  int                    `yaml:"mines"`
	Policy mines.FirstClickPolicy `yaml:"policy"`
}

func (p PresetConfig) Settings() mines.Settings {
	return mines.Settings{
		Rows:   p.Rows,
		Cols:   p.Cols,
		Mines:  p.Mines,
		Policy: p.Policy,
	}
}

// GameConfig holds what a new game starts with when no flag overrides it.
type GameConfig struct {
	Preset       string                  `yaml:"preset"`
	Policy       *mines.FirstClickPolicy `yaml:"policy"`
	QuestionMode bool                    `yaml:"question_mode"`
}

type LimitsConfig struct {
	MinSize    int     `yaml:"min_size"`
	MaxSize    int     `yaml:"max_size"`
	MinMines   int     `yaml:"min_mines"`
	MaxMines   int     `yaml:"max_mines"`
	MaxDensity float64 `yaml:"max_density"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type Config struct {
	Mode    string         `yaml:"mode"`
	Game    GameConfig     `yaml:"game"`
	Limits  LimitsConfig   `yaml:"limits"`
	Presets []PresetConfig `yaml:"presets"`
	Log     LogConfig      `yaml:"log"`
}

func (c Config) Development() bool {
	return c.Mode == "development" || Development()
}

func (c Config) Fields() logrus.Fields {
	names := make([]string, len(c.Presets))
	for i, p := range c.Presets {
		names[i] = p.Name
	}
	return map[string]any{
		"mode":          c.Mode,
		"game_preset":   c.Game.Preset,
		"question_mode": c.Game.QuestionMode,
		"min_size":      c.Limits.MinSize,
		"max_size":      c.Limits.MaxSize,
		"min_mines":     c.Limits.MinMines,
		"max_mines":     c.Limits.MaxMines,
		"max_density":   c.Limits.MaxDensity,
		"presets":       strings.Join(names, ","),
		"log_level":     c.Log.Level,
		"log_file":      c.Log.File,
	}
}

// MinesLimits converts the limits section, filling unset fields from
// mines.DefaultLimits.
func (c Config) MinesLimits() mines.Limits {
	l := mines.DefaultLimits
	if c.Limits.MinSize > 0 {
		l.MinSize = c.Limits.MinSize
	}
	if c.Limits.MaxSize > 0 {
		l.MaxSize = c.Limits.MaxSize
	}
	if c.Limits.MinMines > 0 {
		l.MinMines = c.Limits.MinMines
	}
	if c.Limits.MaxMines > 0 {
		l.MaxMines = c.Limits.MaxMines
	}
	if c.Limits.MaxDensity > 0 {
		l.MaxDensity = c.Limits.MaxDensity
	}
	return l
}

// Preset looks a preset up by name, first in the config and then among the
// built-in ones.
func (c Config) Preset(name string) (mines.Settings, error) {
	i := slices.IndexFunc(c.Presets, func(p PresetConfig) bool {
		return strings.EqualFold(p.Name, name)
	})
	if i >= 0 {
		return c.Presets[i].Settings(), nil
	}
	if s, ok := mines.PresetByName(name); ok {
		return s, nil
	}
	return mines.Settings{}, fmt.Errorf("unknown preset %q", name)
}

// AllPresets lists the configured presets followed by built-in ones the
// config does not shadow.
func (c Config) AllPresets() []mines.Preset {
	presets := make([]mines.Preset, 0, len(c.Presets)+3)
	for _, p := range c.Presets {
		presets = append(presets, mines.Preset{Name: p.Name, Settings: p.Settings()})
	}
	for _, p := range mines.Presets() {
		shadowed := slices.ContainsFunc(presets, func(q mines.Preset) bool {
			return strings.EqualFold(p.Name, q.Name)
		})
		if !shadowed {
			presets = append(presets, p)
		}
	}
	return presets
}

// NewGame resolves the settings a game starts with by default.
func (c Config) NewGame() (mines.Settings, error) {
	name := c.Game.Preset
	if name == "" {
		name = "beginner"
	}
	s, err := c.Preset(name)
	if err != nil {
		return s, err
	}
	if c.Game.Policy != nil {
		s.Policy = *c.Game.Policy
	}
	s.QuestionMode = c.Game.QuestionMode
	return s, nil
}

func (c Config) Validate() error {
	l := c.Limits
	switch {
	case l.MinSize < 0, l.MaxSize < 0, l.MinMines < 0, l.MaxMines < 0:
		return fmt.Errorf("limits must not be negative")
	case l.MaxSize > 0 && l.MinSize > l.MaxSize:
		return fmt.Errorf("limits: min_size %d above max_size %d", l.MinSize, l.MaxSize)
	case l.MaxMines > 0 && l.MinMines > l.MaxMines:
		return fmt.Errorf("limits: min_mines %d above max_mines %d", l.MinMines, l.MaxMines)
	case l.MaxDensity < 0 || l.MaxDensity >= 1 || math.IsNaN(l.MaxDensity):
		return fmt.Errorf("limits: max_density %v outside [0, 1)", l.MaxDensity)
	}
	for _, p := range c.Presets {
		if p.Name == "" {
			return fmt.Errorf("preset without a name")
		}
		if err := p.Settings().Validate(); err != nil {
			return fmt.Errorf("preset %s: %w", p.Name, err)
		}
	}
	if c.Log.Level != "" {
		if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("log: %w", err)
		}
	}
	return nil
}
