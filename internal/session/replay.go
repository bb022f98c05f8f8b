package session

import (
	"fmt"
	"strings"

	"github.com/vancomm/minesweeper-engine/internal/commands"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

// Replay plays moves on a fresh board. With a seed in settings the result
// is the game the moves were recorded from.
func Replay(opts Options, moves []commands.Command) (*Session, error) {
	s, err := New(opts)
	if err != nil {
		return nil, err
	}
	for i, m := range moves {
		if _, err := s.Apply(m); err != nil {
			return s, fmt.Errorf("move %d (%s): %w", i+1, m, err)
		}
	}
	return s, nil
}

// ParseTranscript splits a transcript into its settings and moves.
func ParseTranscript(transcript string) (mines.Settings, []commands.Command, error) {
	words := strings.Fields(transcript)
	if len(words) == 0 {
		return mines.Settings{}, nil, fmt.Errorf("%w: empty transcript", mines.ErrInvalidSettings)
	}
	settings, err := mines.ParseSettings(words[0])
	if err != nil {
		return settings, nil, err
	}
	moves, err := commands.ParseScript(words[1:])
	return settings, moves, err
}
