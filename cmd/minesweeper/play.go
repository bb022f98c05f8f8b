package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vancomm/minesweeper-engine/internal/commands"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/render"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

var (
	flagPreset   string
	flagParams   string
	flagSeed     uint64
	flagQuestion bool
	flagNoColor  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Play a game, reading moves from stdin.

Rows and columns are counted from 0.

` + commands.Usage + `

Custom boards given with --params are clamped to the configured limits
(9..60 rows and columns, 9..499 mines, at most 40% of the cells).`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagPreset, "preset", "p", "", "difficulty preset (see 'minesweeper presets')")
	playCmd.Flags().StringVar(&flagParams, "params", "", `custom settings, e.g. "rows=16&cols=30&mines=99&policy=clear&question=true"`)
	playCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "seed for a reproducible layout (default: random)")
	playCmd.Flags().BoolVarP(&flagQuestion, "question", "q", false, "enable question marks")
	playCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable colors")
}

// gameSettings resolves the first game: config defaults, then --preset, then
// --params and --seed on top.
func gameSettings(cmd *cobra.Command) (mines.Settings, error) {
	settings, err := cfg.NewGame()
	if err != nil {
		return settings, err
	}
	if flagPreset != "" {
		question := settings.QuestionMode
		if settings, err = cfg.Preset(flagPreset); err != nil {
			return settings, err
		}
		settings.QuestionMode = question
	}
	if flagParams != "" {
		if settings, err = commands.DecodeSettings(flagParams, settings); err != nil {
			return settings, err
		}
		if clamped := settings.Clamp(cfg.MinesLimits()); clamped.String() != settings.String() {
			log.WithFields(logrus.Fields{
				"requested": settings.String(),
				"clamped":   clamped.String(),
			}).Warn("settings outside the configured limits")
			settings = clamped
		}
	}
	if cmd.Flags().Changed("seed") {
		settings = settings.WithSeed(flagSeed)
	}
	if flagQuestion {
		settings.QuestionMode = true
	}
	return settings, settings.Validate()
}

func runPlay(cmd *cobra.Command, args []string) error {
	settings, err := gameSettings(cmd)
	if err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	color := !flagNoColor && term.IsTerminal(int(os.Stdout.Fd()))

	s, err := session.New(session.Options{
		Settings: settings,
		Presets:  cfg.Preset,
		Renderer: render.New(os.Stdout, color),
		Out:      os.Stdout,
		Prompt:   interactive,
	})
	if err != nil {
		return err
	}
	if interactive {
		fmt.Println("type h for help")
	}
	return s.Run(cmd.Context(), os.Stdin)
}
