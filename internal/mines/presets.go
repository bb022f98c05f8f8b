package mines

import (
	"slices"
	"strings"
)

type Preset struct {
	Name     string
	Settings Settings
}

var (
	Beginner     = Settings{Rows: 9, Cols: 9, Mines: 10, Policy: SafeCell}
	Intermediate = Settings{Rows: 16, Cols: 16, Mines: 40, Policy: SafeCell}
	Expert       = Settings{Rows: 16, Cols: 30, Mines: 99, Policy: SafeCell}
)

func Presets() []Preset {
	return []Preset{
		{Name: "beginner", Settings: Beginner},
		{Name: "intermediate", Settings: Intermediate},
		{Name: "expert", Settings: Expert},
	}
}

func PresetByName(name string) (Settings, bool) {
	presets := Presets()
	i := slices.IndexFunc(presets, func(p Preset) bool {
		return strings.EqualFold(p.Name, name)
	})
	if i < 0 {
		return Settings{}, false
	}
	return presets[i].Settings, true
}
