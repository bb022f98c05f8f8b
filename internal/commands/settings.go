package commands

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
	decoder.RegisterConverter(mines.FirstClickPolicy(0), func(s string) reflect.Value {
		policy, err := mines.ParsePolicy(s)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(policy)
	})
}

type settingsDTO struct {
	Rows     int                    `schema:"rows"`
	Cols     int                    `schema:"cols"`
	Mines    int                    `schema:"mines"`
	Policy   mines.FirstClickPolicy `schema:"policy"`
	Question bool                   `schema:"question"`
	Seed     *uint64                `schema:"seed"`
}

// DecodeSettings applies a query string such as
// "rows=16&cols=30&mines=99&policy=clear" on top of base. Keys left out keep
// the value from base.
func DecodeSettings(query string, base mines.Settings) (mines.Settings, error) {
	src, err := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if err != nil {
		return base, fmt.Errorf("%w: %w", mines.ErrInvalidSettings, err)
	}

	dto := settingsDTO{
		Rows:     base.Rows,
		Cols:     base.Cols,
		Mines:    base.Mines,
		Policy:   base.Policy,
		Question: base.QuestionMode,
	}
	if base.Seed != nil {
		seed := *base.Seed
		dto.Seed = &seed
	}
	if err := decoder.Decode(&dto, src); err != nil {
		return base, fmt.Errorf("%w: %w", mines.ErrInvalidSettings, err)
	}

	s := mines.Settings{
		Rows:         dto.Rows,
		Cols:         dto.Cols,
		Mines:        dto.Mines,
		Policy:       dto.Policy,
		QuestionMode: dto.Question,
		Seed:         dto.Seed,
	}
	return s, s.Validate()
}

// ResolveSettings turns the argument of "new" into settings: a preset name
// or a rows:cols:mines[:policy][:q][#seed] descriptor.
func ResolveSettings(arg string, presets func(string) (mines.Settings, error)) (mines.Settings, error) {
	if strings.Contains(arg, ":") {
		return mines.ParseSettings(arg)
	}
	return presets(arg)
}
