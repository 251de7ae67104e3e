package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty interactively",
	Long: `Start with a menu of game modes followed by a difficulty picker.

Press B during a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc          - Back to mode list
  Q            - Quit

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --config ./my-tetris.yaml`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	tetris.SetConfigPath(flagConfig)
	cfg := terminalConfig()

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = result.Config
		if result.Quit || result.GameID == "" {
			return nil
		}

		game, err := tui.NewGame(result.GameID, result.Difficulty)
		if err != nil {
			logger.Error("cannot create game", "game", result.GameID, "err", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		back, err := tui.Run(game, cfg, logger)
		if err != nil {
			return fmt.Errorf("cannot run game: %w", err)
		}
		if !back {
			return nil
		}
	}
}
