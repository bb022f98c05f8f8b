package session

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-engine/internal/commands"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/render"
)

var Log = logrus.New()

var ErrNothingToChord = errors.New("only a revealed number can be chorded")

type Options struct {
	Settings mines.Settings
	// Presets resolves the argument of "new". Defaults to the built-in
	// presets.
	Presets  func(name string) (mines.Settings, error)
	Renderer *render.Renderer
	Out      io.Writer
	Prompt   bool
}

// Session owns one board at a time and applies player commands to it. It
// is driven from a single goroutine.
type Session struct {
	opts  Options
	board *mines.Board
	moves []commands.Command
}

// Outcome describes what a command did.
type Outcome struct {
	State   mines.State
	Mark    mines.MarkState
	Changed bool // the board should be redrawn
	Quit    bool
	Message string
}

func builtinPreset(name string) (mines.Settings, error) {
	if s, ok := mines.PresetByName(name); ok {
		return s, nil
	}
	return mines.Settings{}, fmt.Errorf("unknown preset %q", name)
}

func New(opts Options) (*Session, error) {
	if opts.Presets == nil {
		opts.Presets = builtinPreset
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Renderer == nil {
		opts.Renderer = render.New(opts.Out, false)
	}
	s := &Session{opts: opts}
	if err := s.reset(opts.Settings); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) reset(settings mines.Settings) error {
	board, err := mines.New(settings)
	if err != nil {
		return err
	}
	s.board = board
	s.moves = s.moves[:0]
	Log.WithField("settings", board.Settings().String()).Info("new game")
	return nil
}

func (s *Session) Board() *mines.Board {
	return s.board
}

// Transcript is the current game as a replayable settings descriptor
// followed by its moves.
func (s *Session) Transcript() string {
	parts := []string{s.board.Settings().String()}
	for _, m := range s.moves {
		parts = append(parts, m.String())
	}
	return strings.Join(parts, " ")
}

func (s *Session) record(cmd commands.Command, state mines.State) {
	s.moves = append(s.moves, cmd)
	Log.WithFields(logrus.Fields{
		"move":  cmd.String(),
		"won":   state.Won,
		"lost":  state.Lost,
		"flags": s.board.Flags(),
	}).Debug("move")
	if state.Over() {
		Log.WithFields(logrus.Fields{
			"won":        state.Won,
			"transcript": s.Transcript(),
		}).Info("game over")
	}
}

// Apply runs one command against the current board. Engine errors such as
// out-of-bounds coordinates are returned and leave the session usable.
func (s *Session) Apply(cmd commands.Command) (Outcome, error) {
	b := s.board
	switch cmd.Kind {
	case commands.Open:
		if b.State().Over() {
			return Outcome{State: b.State(), Message: "the game is over, type n for a new one"}, nil
		}
		state, err := b.Reveal(cmd.Coord)
		if err != nil {
			return Outcome{State: b.State()}, err
		}
		s.record(cmd, state)
		return Outcome{State: state, Changed: true, Message: outcomeMessage(state)}, nil

	case commands.Chord:
		cell, err := b.CellAt(cmd.Coord)
		if err != nil {
			return Outcome{State: b.State()}, err
		}
		if !cell.Revealed || cell.Adjacent == 0 {
			return Outcome{State: b.State()}, ErrNothingToChord
		}
		state, err := b.Reveal(cmd.Coord)
		if err != nil {
			return Outcome{State: b.State()}, err
		}
		s.record(cmd, state)
		return Outcome{State: state, Changed: true, Message: outcomeMessage(state)}, nil

	case commands.Flag:
		mark, err := b.Mark(cmd.Coord)
		if err != nil {
			return Outcome{State: b.State()}, err
		}
		s.record(cmd, b.State())
		return Outcome{State: b.State(), Mark: mark, Changed: true}, nil

	case commands.New:
		settings := s.opts.Settings
		settings.Seed = nil
		if cmd.Arg != "" {
			var err error
			settings, err = commands.ResolveSettings(cmd.Arg, s.opts.Presets)
			if err != nil {
				return Outcome{State: b.State()}, err
			}
			settings.QuestionMode = settings.QuestionMode || s.opts.Settings.QuestionMode
		}
		if err := s.reset(settings); err != nil {
			return Outcome{State: b.State()}, err
		}
		return Outcome{State: s.board.State(), Changed: true}, nil

	case commands.Forfeit:
		if b.State().Over() {
			return Outcome{State: b.State()}, nil
		}
		b.Forfeit()
		s.record(cmd, b.State())
		return Outcome{State: b.State(), Changed: true, Message: "you gave up"}, nil

	case commands.Hint:
		if c, ok := b.Hint(); ok {
			Log.WithField("cell", c.String()).Debug("hint")
			return Outcome{State: b.State(), Message: fmt.Sprintf("%d %d is safe", c.Row, c.Col)}, nil
		}
		return Outcome{State: b.State(), Message: "no cell can be proven safe"}, nil

	case commands.Help:
		return Outcome{State: b.State(), Message: commands.Usage}, nil

	case commands.Quit:
		return Outcome{State: b.State(), Quit: true}, nil
	}
	return Outcome{State: b.State()}, fmt.Errorf("%w %s", commands.ErrUnknownCommand, cmd.Kind)
}

func outcomeMessage(state mines.State) string {
	switch {
	case state.Won:
		return "you won!"
	case state.Lost:
		return "boom. you lost"
	}
	return ""
}

// Show writes the board and the status line.
func (s *Session) Show() {
	r := s.opts.Renderer
	fmt.Fprint(s.opts.Out, r.Board(s.board))
	fmt.Fprintln(s.opts.Out, r.Status(s.board))
}
