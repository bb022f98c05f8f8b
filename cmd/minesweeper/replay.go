package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper-engine/internal/render"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

var replayCmd = &cobra.Command{
	Use:   "replay <settings> [moves...]",
	Short: "Replay a recorded game",
	Long: `Replay a game from its transcript and print the final board.

The first argument is a settings descriptor rows:cols:mines[:policy][:q]#seed,
the rest are moves. A finished game logs its transcript, for example:

  minesweeper replay 9:9:10:safe#42 open 4 4 flag 0 0 chord 1 1

Flags go before the settings; everything after them is read as moves, so
negative coordinates are passed through to the board.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable colors")
	replayCmd.Flags().SetInterspersed(false)
}

func runReplay(cmd *cobra.Command, args []string) error {
	settings, moves, err := session.ParseTranscript(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if settings.Seed == nil {
		log.Warn("no #seed in the settings, the layout will be random")
	}

	out := cmd.OutOrStdout()
	s, err := session.Replay(session.Options{
		Settings: settings,
		Presets:  cfg.Preset,
		Renderer: render.New(out, !flagNoColor),
		Out:      out,
	}, moves)
	if err != nil {
		return err
	}
	s.Show()

	state := s.Board().State()
	switch {
	case state.Won:
		fmt.Fprintln(out, "result: won")
	case state.Lost:
		fmt.Fprintln(out, "result: lost")
	default:
		fmt.Fprintf(out, "result: undecided, %d of %d mines flagged\n", s.Board().Flags(), s.Board().Settings().Mines)
	}
	return nil
}
