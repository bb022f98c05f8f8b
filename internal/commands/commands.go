package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

type Kind uint8

const (
	Open Kind = iota + 1
	Flag
	Chord
	New
	Forfeit
	Hint
	Help
	Quit
	lastKind
)

var kindNames = [...]string{
	Open:    "open",
	Flag:    "flag",
	Chord:   "chord",
	New:     "new",
	Forfeit: "forfeit",
	Hint:    "hint",
	Help:    "help",
	Quit:    "quit",
}

func (k Kind) String() string {
	if k == 0 || k >= lastKind {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

var aliases = map[string]Kind{
	"o": Open, "open": Open, "reveal": Open,
	"f": Flag, "flag": Flag, "m": Flag, "mark": Flag,
	"c": Chord, "chord": Chord,
	"n": New, "new": New,
	"r": Forfeit, "forfeit": Forfeit, "resign": Forfeit,
	"t": Hint, "hint": Hint,
	"h": Help, "help": Help, "?": Help,
	"q": Quit, "quit": Quit, "exit": Quit,
}

// Maps commands to the number of arguments they take: [min, max]
var commandNargs = map[Kind][2]int{
	Open:    {2, 2},
	Flag:    {2, 2},
	Chord:   {2, 2},
	New:     {0, 1},
	Forfeit: {0, 0},
	Hint:    {0, 0},
	Help:    {0, 0},
	Quit:    {0, 0},
}

var (
	ErrEmpty          = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgs        = errors.New("bad arguments")
)

// Command is one parsed player move. Coord is set for Open, Flag and Chord;
// Arg is the optional preset or settings descriptor of New.
type Command struct {
	Kind  Kind
	Coord mines.Coord
	Arg   string
}

func (c Command) String() string {
	switch c.Kind {
	case Open, Flag, Chord:
		return fmt.Sprintf("%s %d %d", c.Kind, c.Coord.Row, c.Coord.Col)
	case New:
		if c.Arg != "" {
			return "new " + c.Arg
		}
	}
	return c.Kind.String()
}

func parseRowCol(args []string) (c mines.Coord, err error) {
	if c.Row, err = strconv.Atoi(args[0]); err != nil {
		return c, fmt.Errorf("%w: row must be an int", ErrBadArgs)
	}
	if c.Col, err = strconv.Atoi(args[1]); err != nil {
		return c, fmt.Errorf("%w: column must be an int", ErrBadArgs)
	}
	return c, nil
}

func lookup(word string) (Kind, error) {
	kind, ok := aliases[strings.ToLower(word)]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownCommand, word)
	}
	return kind, nil
}

func build(kind Kind, args []string) (Command, error) {
	cmd := Command{Kind: kind}
	nargs := commandNargs[kind]
	if len(args) < nargs[0] || len(args) > nargs[1] {
		if nargs[0] == nargs[1] {
			return cmd, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrBadArgs, kind, nargs[0], len(args))
		}
		return cmd, fmt.Errorf("%w: %s takes %d to %d arguments, got %d", ErrBadArgs, kind, nargs[0], nargs[1], len(args))
	}
	switch kind {
	case Open, Flag, Chord:
		c, err := parseRowCol(args)
		if err != nil {
			return cmd, err
		}
		cmd.Coord = c
	case New:
		if len(args) == 1 {
			cmd.Arg = args[0]
		}
	}
	return cmd, nil
}

// Parse reads one line of the play loop, e.g. "o 3 4" or "flag 0 0".
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmpty
	}
	kind, err := lookup(fields[0])
	if err != nil {
		return Command{}, err
	}
	return build(kind, fields[1:])
}

// ParseScript reads a flat sequence of moves such as
// "open 4 4 flag 0 0 chord 1 1". Only Open, Flag, Chord and Forfeit are
// allowed, since a script replays a single game.
func ParseScript(words []string) ([]Command, error) {
	var cmds []Command
	for i := 0; i < len(words); {
		kind, err := lookup(words[i])
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i+1, err)
		}
		switch kind {
		case Open, Flag, Chord, Forfeit:
		default:
			return nil, fmt.Errorf("word %d: %w: %s is not a move", i+1, ErrUnknownCommand, kind)
		}
		n := commandNargs[kind][0]
		if i+1+n > len(words) {
			return nil, fmt.Errorf("word %d: %w: %s needs %d arguments", i+1, ErrBadArgs, kind, n)
		}
		cmd, err := build(kind, words[i+1:i+1+n])
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i+1, err)
		}
		cmds = append(cmds, cmd)
		i += 1 + n
	}
	return cmds, nil
}

const Usage = `commands:
  o, open   ROW COL   reveal a cell, or chord a revealed number
  f, flag   ROW COL   cycle the mark on a hidden cell
  c, chord  ROW COL   reveal around a satisfied number
  n, new    [PRESET]  start a new game (preset name or rows:cols:mines[:policy])
  r, forfeit          give up the current game
  t, hint             point at a cell that is provably safe
  h, help             show this help
  q, quit             leave`
