package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(cmd *cobra.Command, args []string) {
	presets := cfg.AllPresets()

	nameLen := len("NAME")
	for _, p := range presets {
		nameLen = max(nameLen, len(p.Name))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-*s  %4s  %4s  %5s  %s\n", nameLen, "NAME", "ROWS", "COLS", "MINES", "FIRST CLICK")
	for _, p := range presets {
		s := p.Settings
		fmt.Fprintf(out, "%-*s  %4d  %4d  %5d  %s\n", nameLen, p.Name, s.Rows, s.Cols, s.Mines, s.Policy)
	}
}
