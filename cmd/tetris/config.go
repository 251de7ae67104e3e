package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the built-in game config",
	Long: `Prints the embedded default YAML for a mode ("tetris" when none is
named). Save it as ~/.tetris/configs/tetris.yaml or ./configs/tetris.yaml,
or pass it to play with --config, to override the defaults.

Examples:
  tetris config > ~/.tetris/configs/tetris.yaml
  tetris config tetris_classic`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	gameID := "tetris"
	if len(args) == 1 {
		gameID = args[0]
	}
	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("no default config for mode %q", gameID)
	}
	_, err := os.Stdout.Write(data)
	return err
}
