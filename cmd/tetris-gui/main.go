// tetris-gui runs the falling-block game in a window using ebiten. It reads
// the keyboard, the mouse and touch gestures: swipe to move or rotate, tap
// to rotate, double tap to hard drop.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/platform/gui"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	flagConfig     string
	flagDifficulty string
	flagClassic    bool
	flagSeed       int64
	flagScale      int
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "tetris-gui",
	Short:        "Play Tetris in a window",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().BoolVar(&flagClassic, "classic", false, "Disable wall kicks")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().IntVar(&flagScale, "scale", 1, "Window scale factor")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris-gui",
		Level:           level,
	})

	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		logger.Warn("using default config", "err", err)
	}
	config.ApplyTetrisPreset(&cfg, config.DifficultyPreset(flagDifficulty))

	mode := tetris.ModeKicks
	if flagClassic {
		mode = tetris.ModeClassic
	}

	app := gui.NewApp(gui.Options{
		Config: cfg,
		Mode:   mode,
		Seed:   flagSeed,
		Logger: logger,
	})

	w, h := app.WindowSize()
	scale := max(flagScale, 1)
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowTitle("Tetris")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
