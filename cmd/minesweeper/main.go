// minesweeper plays Minesweeper in the terminal.
//
// Usage:
//
//	minesweeper play                         - play a game on stdin/stdout
//	minesweeper presets                      - list difficulty presets
//	minesweeper replay <settings> <moves...> - replay a recorded game
//
// Global flags:
//
//	--config <path>     - YAML config (default: search ~/.minesweeper, ./configs)
//	--log-level <level> - logrus level
//	--log-file <path>   - also log to a rotating file
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/logging"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

var (
	log = logrus.New()
	cfg config.Config

	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Minesweeper in the terminal",
	Long: `Minesweeper in the terminal.

Examples:
  minesweeper play
  minesweeper play --preset expert --seed 42
  minesweeper play --params "rows=20&cols=20&mines=80&policy=clear"
  minesweeper presets
  minesweeper replay 9:9:10:safe#42 open 4 4 flag 0 0`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (overrides the config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "rotating log file (overrides the config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(replayCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfg, err = config.Load(flagConfig); err != nil {
		return err
	}

	opts := logging.OptionsFrom(cfg)
	if flagLogLevel != "" {
		opts.Level = flagLogLevel
	}
	if flagLogFile != "" {
		opts.File = flagLogFile
	}
	if err := logging.Setup(opts, log, mines.Log, session.Log); err != nil {
		return err
	}

	log.WithFields(cfg.Fields()).Debug("config")
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
