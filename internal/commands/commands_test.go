package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"o 3 4", Command{Kind: Open, Coord: mines.Coord{Row: 3, Col: 4}}},
		{"  OPEN   0 12 ", Command{Kind: Open, Coord: mines.Coord{Row: 0, Col: 12}}},
		{"f 1 1", Command{Kind: Flag, Coord: mines.Coord{Row: 1, Col: 1}}},
		{"mark 2 -1", Command{Kind: Flag, Coord: mines.Coord{Row: 2, Col: -1}}},
		{"c 5 5", Command{Kind: Chord, Coord: mines.Coord{Row: 5, Col: 5}}},
		{"n", Command{Kind: New}},
		{"new expert", Command{Kind: New, Arg: "expert"}},
		{"r", Command{Kind: Forfeit}},
		{"hint", Command{Kind: Hint}},
		{"T", Command{Kind: Hint}},
		{"?", Command{Kind: Help}},
		{"exit", Command{Kind: Quit}},
	}
	for _, test := range tests {
		got, err := Parse(test.line)
		require.NoError(t, err, test.line)
		assert.Equal(t, test.want, got, test.line)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		line string
		err  error
	}{
		{"", ErrEmpty},
		{"   ", ErrEmpty},
		{"dig 1 1", ErrUnknownCommand},
		{"o 1", ErrBadArgs},
		{"o 1 2 3", ErrBadArgs},
		{"f x 2", ErrBadArgs},
		{"c 1 y", ErrBadArgs},
		{"n a b", ErrBadArgs},
		{"q now", ErrBadArgs},
		{"t 1 1", ErrBadArgs},
	}
	for _, test := range tests {
		_, err := Parse(test.line)
		assert.True(t, errors.Is(err, test.err), "%q: %v", test.line, err)
	}
}

func TestCommandString(t *testing.T) {
	for _, line := range []string{"open 3 4", "flag 0 0", "chord 1 2", "new", "new 9:9:10", "forfeit", "hint", "quit"} {
		cmd, err := Parse(line)
		require.NoError(t, err)
		assert.Equal(t, line, cmd.String())
	}
	assert.Equal(t, "Kind(0)", Kind(0).String())
}

func TestParseScript(t *testing.T) {
	cmds, err := ParseScript([]string{"open", "4", "4", "f", "0", "0", "chord", "1", "1", "forfeit"})
	require.NoError(t, err)
	assert.Equal(t, []Command{
		{Kind: Open, Coord: mines.Coord{Row: 4, Col: 4}},
		{Kind: Flag, Coord: mines.Coord{Row: 0, Col: 0}},
		{Kind: Chord, Coord: mines.Coord{Row: 1, Col: 1}},
		{Kind: Forfeit},
	}, cmds)

	cmds, err = ParseScript(nil)
	require.NoError(t, err)
	assert.Empty(t, cmds)

	_, err = ParseScript([]string{"open", "4"})
	assert.ErrorIs(t, err, ErrBadArgs)

	_, err = ParseScript([]string{"open", "4", "x"})
	assert.ErrorIs(t, err, ErrBadArgs)

	_, err = ParseScript([]string{"new"})
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = ParseScript([]string{"hint"})
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = ParseScript([]string{"open", "1", "1", "jump"})
	assert.ErrorContains(t, err, "word 4")
}
